package allocator

import (
	"errors"
	"fmt"

	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/model"
)

// Result is everything a generation produces for one player. It is built
// once and not modified afterwards.
type Result struct {
	Player string

	// Starting and Included are the slot names, in pool order.
	Starting []string
	Included []string

	// Pairs binds every slot, Victory last, to its song.
	Pairs Pairs

	// Regions is the progression graph. Locations lists the locations of
	// its slot regions in graph order.
	Regions   []Region
	Locations []model.Location

	// ItemPool holds exactly one item per location.
	ItemPool []model.Item

	// Precollected are the unlock items of the starting slots, granted when
	// the session starts. They are not part of ItemPool.
	Precollected []model.Item

	ProgressPoints int
	Goal           Goal

	DisableDifficultyReduction bool
}

// SlotData returns the blob a player's client reads.
func (r *Result) SlotData() SlotData {
	return SlotData{
		Pairs:                      r.Pairs,
		PerformancePointsNeeded:    r.Goal.Count,
		DisableDifficultyReduction: r.DisableDifficultyReduction,
	}
}

// Generate runs one player's generation over the catalog songs.
//
// The steps draw from rng in a fixed order (pairing, regions, item pool),
// so the same songs, options and seed always give the same result. Option
// ranges are not checked here beyond rejecting negative song counts; see
// config.Options.Validate.
//
// Fails with an *InsufficientSongsError when fewer than
// starting + additional + 1 songs are eligible.
func Generate(player string, songs []*model.Song, opts *config.Options, rng Shuffler) (*Result, error) {
	if opts.StartingSongs < 0 || opts.AdditionalSongs < 0 {
		return nil, fmt.Errorf("player %s: song counts must not be negative", player)
	}

	starting, included := Partition(model.SlotPool(), opts.StartingSongs, opts.AdditionalSongs)
	eligible := ConstraintsFromOptions(opts).Filter(songs)

	pairs, err := PairSongs(Slots(starting, included), eligible, rng)
	if err != nil {
		var insufficient *InsufficientSongsError
		if errors.As(err, &insufficient) {
			insufficient.Player = player
		}
		return nil, err
	}

	points := ProgressPointCount(len(starting), len(included), opts.PerformancePointsCountPercentage)
	threshold := WinThreshold(points, opts.PerformancePointsWinPercentage)
	locationCount := LocationCount(len(starting), len(included), opts.AdditionalItemPercentage, points)

	regions, err := BuildRegions(starting, included, locationCount, rng)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", player, err)
	}

	names, err := FillItemPool(points, locationCount, included, starting, rng)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", player, err)
	}
	pool, err := Items(names)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", player, err)
	}
	precollected, err := Items(starting)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", player, err)
	}

	return &Result{
		Player:                     player,
		Starting:                   starting,
		Included:                   included,
		Pairs:                      pairs,
		Regions:                    regions,
		Locations:                  Locations(regions),
		ItemPool:                   pool,
		Precollected:               precollected,
		ProgressPoints:             points,
		Goal:                       NewGoal(threshold),
		DisableDifficultyReduction: opts.DisableDifficultyReduction,
	}, nil
}
