// Package config provides configuration management for osuap.
//
// This package handles two kinds of configuration:
//   - Options: one player's generation options, read from YAML or JSON
//   - Settings: generator-wide settings (catalog sources, output, retries)
//
// Nothing here is read from the process environment; callers pass the
// loaded values to the components that need them.
//
// # Player Options
//
//	opts, err := config.LoadOptions("players/alice.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := opts.Validate(); err != nil {
//	    // errors.Is(err, config.ErrOutOfRange)
//	}
//
// Options ranges:
//   - starting_songs: 3-10
//   - additional_songs: 15-400
//   - minimum_difficulty, maximum_difficulty: 0-1000 (stars x 100)
//   - maximum_length: 0-2200 seconds
//   - additional_item_percentage: 50-100
//   - performance_points_count_percentage: 10-40
//   - performance_points_win_count_percentage: 50-100
//
// # Settings
//
//	settings, err := config.Load("/path/to/settings.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.OutputPath = "out/{seed}"
//	err = settings.Save("/path/to/settings.json")
package config
