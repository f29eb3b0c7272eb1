package checker

import (
	"slices"
	"strings"
	"time"

	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/model"
)

// SeenLimit is how many play timestamps a Checker remembers.
const SeenLimit = 400

// ReductionMods are the mods that make a chart easier. Plays using any of
// them are rejected when the slot data disables difficulty reduction.
var ReductionMods = []string{"EZ", "NF", "HT", "DC"}

// Play is one score reported by the score API.
type Play struct {
	BeatmapsetID int64     `json:"beatmapset_id"`
	BeatmapID    int64     `json:"beatmap_id"`
	Length       int       `json:"length"`
	Passed       bool      `json:"passed"`
	Mods         []string  `json:"mods"`
	CreatedAt    time.Time `json:"created_at"`
}

// Reduced reports whether the play used a difficulty reduction mod.
func (p Play) Reduced() bool {
	return slices.ContainsFunc(p.Mods, func(mod string) bool {
		return slices.Contains(ReductionMods, strings.ToUpper(mod))
	})
}

// Checker turns plays into the location ids a client should send.
//
// A Checker is not safe for concurrent use.
type Checker struct {
	data      allocator.SlotData
	locations map[int64]struct{}

	seen    []time.Time
	seenSet map[time.Time]struct{}
}

// New creates a Checker for a player's slot data. locations lists the
// location ids the server knows for the player, checked or not; when it is
// empty every location derivable from a slot name is accepted.
func New(data allocator.SlotData, locations []int64) *Checker {
	set := make(map[int64]struct{}, len(locations))
	for _, id := range locations {
		set[id] = struct{}{}
	}
	return &Checker{
		data:      data,
		locations: set,
		seenSet:   make(map[time.Time]struct{}),
	}
}

// Check returns the location ids a play reaches.
//
// Nothing is returned for a play seen before, a failed play, a play using a
// reduction mod while those are disabled, or a play whose beatmapset is not
// paired with an unlocked slot. Every play that is not a repeat is
// remembered, up to SeenLimit of them.
//
// Without a location list both ids of a matched slot are returned, though
// only slots given a second location during generation actually have one.
func (c *Checker) Check(play Play, unlocked func(slot string) bool) []int64 {
	if !c.remember(play.CreatedAt) {
		return nil
	}
	if !play.Passed {
		return nil
	}
	if c.data.DisableDifficultyReduction && play.Reduced() {
		return nil
	}

	var ids []int64
	for _, pair := range c.data.Pairs {
		if pair.Song.ID != play.BeatmapsetID || !unlocked(pair.Slot.Name) {
			continue
		}
		for n := 1; n <= 2; n++ {
			id, ok := model.LocationID(pair.Slot.Name, n)
			if !ok {
				continue
			}
			if _, known := c.locations[id]; known || len(c.locations) == 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Goal reports whether count progress points meet the win threshold.
func (c *Checker) Goal(count int) bool {
	return allocator.NewGoal(c.data.PerformancePointsNeeded).Satisfied(func(string) int {
		return count
	})
}

// Seen reports whether a play with this timestamp was already checked.
func (c *Checker) Seen(at time.Time) bool {
	_, ok := c.seenSet[at.UTC()]
	return ok
}

// remember records a timestamp and reports whether it was new.
func (c *Checker) remember(at time.Time) bool {
	at = at.UTC()
	if _, ok := c.seenSet[at]; ok {
		return false
	}
	c.seen = append(c.seen, at)
	c.seenSet[at] = struct{}{}
	if len(c.seen) > SeenLimit {
		delete(c.seenSet, c.seen[0])
		c.seen = c.seen[1:]
	}
	return true
}
