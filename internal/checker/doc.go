// Package checker is the client side of a generation: it matches plays
// reported by the score API against a player's slot data.
//
//	c := checker.New(envelope.SlotData, serverLocations)
//	for _, play := range plays {
//	    ids := c.Check(play, inventory.Has)
//	    // send ids as location checks
//	}
//	if c.Goal(inventory.Count(model.ProgressPointItem)) {
//	    // report completion
//	}
//
// Fetching plays and talking to the multiworld server are left to the
// caller.
package checker
