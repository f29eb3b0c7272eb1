// Package generate coordinates a multiworld generation: it loads the song
// catalog once, runs the allocator for every player and writes each
// player's slot data.
//
// # Basic Usage
//
//	settings := config.DefaultSettings()
//	settings.CatalogSources = []string{"songs.json"}
//
//	manager := generate.NewManager(settings, func(e generate.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	if err := manager.LoadCatalog(ctx); err != nil {
//	    return err
//	}
//	manager.AddPlayer("alice", aliceOptions)
//	manager.AddPlayer("bob", bobOptions)
//
//	err := manager.Run(ctx, 42)
//	// err joins the failures of individual players; the others still
//	// have results
//
//	paths, err := manager.WriteSlotData(ctx, "")
//
// # Seeding
//
// Player i draws from PlayerRNG(seed, i). Adding a player at the end never
// changes the output of the players before it.
//
// # Progress Events
//
// Events are delivered from the generating goroutines, possibly
// concurrently. Callbacks must be safe for concurrent use.
package generate
