// Package allocator turns a song catalog and one player's options into a
// generation: slot names paired with songs, the region graph with its
// locations, the item pool and the win threshold.
//
// The pipeline is:
//
//	options -> Filter -> Partition -> PairSongs -> sizing -> BuildRegions -> FillItemPool
//
// Everything is computed synchronously from in-memory data. The only source
// of randomness is the Shuffler passed to Generate, which the caller owns
// for the duration of the call:
//
//	rng := rand.New(rand.NewPCG(uint64(seed), 0))
//	result, err := allocator.Generate("alice", cat.Songs(), opts, rng)
//	if errors.Is(err, allocator.ErrInsufficientSongs) {
//	    // the player's constraints are too strict for the catalog
//	}
//
// # Sizing
//
// With s starting slots, i included slots and the option percentages:
//
//	points    = max(1, floor((2s + i) * points%/100))
//	threshold = max(1, floor(points * win%/100))
//	locations = max(i + points, floor((s + i) * (1 + extra%/100)))
//
// All percentages are applied as floating-point multipliers and rounded
// down.
//
// # Slot Data
//
// Result.SlotData is the blob passed to the player's client. Its pairs keep
// slot order when encoded to JSON.
package allocator
