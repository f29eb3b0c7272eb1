package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrOutOfRange is returned when an option value falls outside its range.
var ErrOutOfRange = errors.New("option out of range")

// RangeError describes which option failed validation.
type RangeError struct {
	Option   string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %d, must be between %d and %d", e.Option, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Option ranges, inclusive.
const (
	MinStartingSongs   = 3
	MaxStartingSongs   = 10
	MinAdditionalSongs = 15
	MaxAdditionalSongs = 400
	MaxDifficulty      = 1000
	MaxLength          = 2200
	MinExtraItemPct    = 50
	MaxExtraItemPct    = 100
	MinPointsPct       = 10
	MaxPointsPct       = 40
	MinWinPct          = 50
	MaxWinPct          = 100
)

// Options holds one player's generation options.
//
// Star ratings are expressed in hundredths: a MinimumDifficulty of 250
// means 2.50 stars.
type Options struct {
	// Song counts
	StartingSongs   int `yaml:"starting_songs" json:"starting_songs"`
	AdditionalSongs int `yaml:"additional_songs" json:"additional_songs"`

	// Song constraints
	MinimumDifficulty int  `yaml:"minimum_difficulty" json:"minimum_difficulty"`
	MaximumDifficulty int  `yaml:"maximum_difficulty" json:"maximum_difficulty"`
	MaximumLength     int  `yaml:"maximum_length" json:"maximum_length"`
	ExplicitSongs     bool `yaml:"explicit_songs" json:"explicit_songs"`
	LovedSongs        bool `yaml:"loved_songs" json:"loved_songs"`

	// Mode exclusions
	ExcludeStandard  bool `yaml:"exclude_standard" json:"exclude_standard"`
	ExcludeCatch     bool `yaml:"exclude_catch" json:"exclude_catch"`
	ExcludeTaiko     bool `yaml:"exclude_taiko" json:"exclude_taiko"`
	Exclude4K        bool `yaml:"exclude_4k" json:"exclude_4k"`
	Exclude7K        bool `yaml:"exclude_7k" json:"exclude_7k"`
	ExcludeOtherKeys bool `yaml:"exclude_other_keys" json:"exclude_other_keys"`

	// Item pool
	AdditionalItemPercentage         int  `yaml:"additional_item_percentage" json:"additional_item_percentage"`
	PerformancePointsCountPercentage int  `yaml:"performance_points_count_percentage" json:"performance_points_count_percentage"`
	PerformancePointsWinPercentage   int  `yaml:"performance_points_win_count_percentage" json:"performance_points_win_count_percentage"`
	DisableDifficultyReduction       bool `yaml:"disable_difficulty_reduction" json:"disable_difficulty_reduction"`

	// Hard overrides by beatmapset id
	IncludeSongs []int64 `yaml:"include_songs,omitempty" json:"include_songs,omitempty"`
	ExcludeSongs []int64 `yaml:"exclude_songs,omitempty" json:"exclude_songs,omitempty"`
}

// DefaultOptions returns options with default values.
func DefaultOptions() *Options {
	return &Options{
		StartingSongs:   5,
		AdditionalSongs: 40,

		MinimumDifficulty: 0,
		MaximumDifficulty: MaxDifficulty,
		MaximumLength:     300,

		AdditionalItemPercentage:         80,
		PerformancePointsCountPercentage: 20,
		PerformancePointsWinPercentage:   80,
	}
}

// Validate checks every numeric option against its range.
//
// All range failures wrap ErrOutOfRange. A minimum difficulty above the
// maximum is also rejected.
func (o *Options) Validate() error {
	checks := []RangeError{
		{"starting_songs", o.StartingSongs, MinStartingSongs, MaxStartingSongs},
		{"additional_songs", o.AdditionalSongs, MinAdditionalSongs, MaxAdditionalSongs},
		{"minimum_difficulty", o.MinimumDifficulty, 0, MaxDifficulty},
		{"maximum_difficulty", o.MaximumDifficulty, 0, MaxDifficulty},
		{"maximum_length", o.MaximumLength, 0, MaxLength},
		{"additional_item_percentage", o.AdditionalItemPercentage, MinExtraItemPct, MaxExtraItemPct},
		{"performance_points_count_percentage", o.PerformancePointsCountPercentage, MinPointsPct, MaxPointsPct},
		{"performance_points_win_count_percentage", o.PerformancePointsWinPercentage, MinWinPct, MaxWinPct},
	}

	var errs []error
	for _, c := range checks {
		if c.Value < c.Min || c.Value > c.Max {
			errs = append(errs, &c)
		}
	}
	if o.MinimumDifficulty > o.MaximumDifficulty {
		errs = append(errs, fmt.Errorf("minimum_difficulty %d is above maximum_difficulty %d", o.MinimumDifficulty, o.MaximumDifficulty))
	}
	return errors.Join(errs...)
}

// LoadOptions reads options from a YAML (.yaml, .yml) or JSON file.
//
// Fields missing from the file keep their defaults. Unlike Load, a missing
// file is an error: a player's options are never implied. The result is not
// validated; call Validate.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := DefaultOptions()
	if isYAML(path) {
		err = yaml.Unmarshal(data, opts)
	} else {
		err = json.Unmarshal(data, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return opts, nil
}

// Save writes options to path, as YAML or JSON depending on the extension.
func (o *Options) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(o)
	} else {
		data, err = json.MarshalIndent(o, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
