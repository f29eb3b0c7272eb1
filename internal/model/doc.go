// Package model defines the core data structures shared by the allocator,
// the catalog loader and the slot-data consumers.
//
// # Songs
//
// Song is one beatmapset from the catalog, with its difficulties:
//
//	song := &model.Song{ID: 1, Title: "Title", Artist: "Artist", Length: 120,
//	    Difficulties: []model.Difficulty{{Mode: model.ModeStandard, StarRating: 4.2}}}
//	fmt.Println(song) // Artist - Title
//
// # Slots, Locations and Items
//
// Slots are generic names ("Song 1", "Song 2", ...) drawn from a fixed
// pool. Each slot owns one or two locations named "{slot} (Item {n})" and
// has an unlock item of the same name. Network ids are derived from the
// slot's position in the pool:
//
//	loc, _ := model.NewLocation("Song 3", 2) // ID = BaseID + 2*2 + 1
//	item, _ := model.NewItem("Song 3")        // ID = BaseID + 2
//
// The progress-point token is "Performance Points"; "Circle" is filler.
package model
