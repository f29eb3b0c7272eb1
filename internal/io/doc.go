// Package ioutils provides file system utilities for writing generation
// output.
//
// This package contains functions for:
//   - Atomic file writing, raw or as JSON
//   - Filename sanitization for cross-platform compatibility
//   - Placeholder expansion in output paths
//   - Directory creation
//
// # File Operations
//
//	// Write data to file, creating directories as needed
//	err := ioutils.WriteFile(ctx, "output/alice.json", data)
//
//	// Write a value as indented JSON
//	err := ioutils.WriteJSON(ctx, "output/alice.json", envelope)
//
// # Output Paths
//
// Use ExpandPath to fill placeholders from settings formats. Player names
// are sanitized on the way in:
//
//	path := ioutils.ExpandPath("{seed}/{player}.json", map[string]string{
//	    "seed":   "42",
//	    "player": "alice: the great",
//	}) // "42/alice_ the great.json"
package ioutils
