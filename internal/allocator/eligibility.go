package allocator

import (
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/model"
	"github.com/samber/lo"
)

// Constraints restrict the catalog to the songs a player can be given.
type Constraints struct {
	// MaxLength is the longest allowed song, in seconds.
	MaxLength int

	// MinDifficulty and MaxDifficulty bound a difficulty's star rating x 100,
	// inclusive.
	MinDifficulty int
	MaxDifficulty int

	// DisallowedModes lists modes whose difficulties do not count.
	DisallowedModes map[model.Mode]struct{}

	AllowExplicit bool
	AllowLoved    bool

	// Include and Exclude are hard overrides by song id. Excluded songs are
	// never eligible; included songs skip the predicate. Exclude wins.
	Include map[int64]struct{}
	Exclude map[int64]struct{}
}

// ConstraintsFromOptions derives the eligibility constraints of a player.
func ConstraintsFromOptions(opts *config.Options) Constraints {
	return Constraints{
		MaxLength:       opts.MaximumLength,
		MinDifficulty:   opts.MinimumDifficulty,
		MaxDifficulty:   opts.MaximumDifficulty,
		DisallowedModes: DisallowedModes(opts),
		AllowExplicit:   opts.ExplicitSongs,
		AllowLoved:      opts.LovedSongs,
		Include:         idSet(opts.IncludeSongs),
		Exclude:         idSet(opts.ExcludeSongs),
	}
}

// DisallowedModes collects the modes excluded by the per-mode toggles.
// ExcludeOtherKeys covers every mania key count except 4k and 7k.
func DisallowedModes(opts *config.Options) map[model.Mode]struct{} {
	modes := make(map[model.Mode]struct{})
	toggles := []struct {
		mode model.Mode
		on   bool
	}{
		{model.ModeStandard, opts.ExcludeStandard},
		{model.ModeCatch, opts.ExcludeCatch},
		{model.ModeTaiko, opts.ExcludeTaiko},
		{model.Mode4K, opts.Exclude4K},
		{model.Mode7K, opts.Exclude7K},
	}
	for _, t := range toggles {
		if t.on {
			modes[t.mode] = struct{}{}
		}
	}
	if opts.ExcludeOtherKeys {
		for keys := 1; keys <= model.MaxManiaKeys; keys++ {
			if keys == 4 || keys == 7 {
				continue
			}
			modes[model.ManiaMode(keys)] = struct{}{}
		}
	}
	return modes
}

// Eligible reports whether a song satisfies the predicate, ignoring the
// include/exclude overrides.
func (c Constraints) Eligible(song *model.Song) bool {
	if song.Explicit && !c.AllowExplicit {
		return false
	}
	if song.Loved && !c.AllowLoved {
		return false
	}
	if song.Length > c.MaxLength {
		return false
	}
	return lo.ContainsBy(song.Difficulties, c.playable)
}

func (c Constraints) playable(d model.Difficulty) bool {
	if _, disallowed := c.DisallowedModes[d.Mode]; disallowed {
		return false
	}
	cs := d.Centistars()
	return float64(c.MinDifficulty) <= cs && cs <= float64(c.MaxDifficulty)
}

// Filter returns the songs a player may be given, in catalog order.
// It has no side effects, and filtering its own output returns the same
// songs.
func (c Constraints) Filter(songs []*model.Song) []*model.Song {
	return lo.Filter(songs, func(song *model.Song, _ int) bool {
		if _, excluded := c.Exclude[song.ID]; excluded {
			return false
		}
		if _, included := c.Include[song.ID]; included {
			return true
		}
		return c.Eligible(song)
	})
}

func idSet(ids []int64) map[int64]struct{} {
	return lo.Associate(ids, func(id int64) (int64, struct{}) {
		return id, struct{}{}
	})
}
