package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the game-mode tag carried by every difficulty of a beatmapset.
//
// Standard, catch and taiko difficulties use the names the score API uses
// ("osu", "fruits", "taiko"). Mania difficulties are tagged by key count,
// from "1k" up to "18k".
type Mode string

const (
	ModeStandard Mode = "osu"
	ModeCatch    Mode = "fruits"
	ModeTaiko    Mode = "taiko"
	Mode4K       Mode = "4k"
	Mode7K       Mode = "7k"
)

// MaxManiaKeys is the highest key count a mania difficulty can have.
const MaxManiaKeys = 18

// ManiaMode returns the mode tag for a mania difficulty with the given key count.
func ManiaMode(keys int) Mode {
	return Mode(strconv.Itoa(keys) + "k")
}

// Keys returns the key count of a mania mode tag, or 0 for non-mania modes.
func (m Mode) Keys() int {
	s, ok := strings.CutSuffix(string(m), "k")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxManiaKeys {
		return 0
	}
	return n
}

// Valid reports whether m is a known mode tag.
func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModeCatch, ModeTaiko:
		return true
	}
	return m.Keys() > 0
}

// Difficulty is a single playable chart of a song.
type Difficulty struct {
	// Mode is the game mode the chart is played in.
	Mode Mode `json:"mode"`

	// StarRating is the chart's star rating as published (e.g. 4.37).
	StarRating float64 `json:"sr"`
}

// Centistars returns the star rating scaled by 100, the unit the
// difficulty options are expressed in. The value is not rounded.
func (d Difficulty) Centistars() float64 {
	return d.StarRating * 100
}

// Song is one beatmapset from the catalog.
//
// Songs are loaded once and never modified. They are serialized verbatim
// into the slot data handed to clients, which match plays against ID.
type Song struct {
	// ID is the beatmapset id. Unique within a catalog.
	ID int64 `json:"id"`

	Title  string `json:"title"`
	Artist string `json:"artist"`

	// Length is the total playable length in seconds.
	Length int `json:"length"`

	// Explicit marks songs flagged as explicit content.
	Explicit bool `json:"nsfw"`

	// Loved marks songs from the loved category.
	Loved bool `json:"loved"`

	Difficulties []Difficulty `json:"beatmaps"`
}

// String returns "Artist - Title".
func (s *Song) String() string {
	return fmt.Sprintf("%s - %s", s.Artist, s.Title)
}

// Modes returns the distinct modes the song has difficulties for, in
// first-seen order.
func (s *Song) Modes() []Mode {
	seen := make(map[Mode]struct{}, len(s.Difficulties))
	var modes []Mode
	for _, d := range s.Difficulties {
		if _, ok := seen[d.Mode]; ok {
			continue
		}
		seen[d.Mode] = struct{}{}
		modes = append(modes, d.Mode)
	}
	return modes
}
