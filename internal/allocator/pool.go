package allocator

import (
	"fmt"

	"github.com/handiism/osuap/internal/model"
)

// FillItemPool returns the names of the items to place, exactly
// locationCount of them.
//
// Progress points come first. The remaining entries are slot-unlock items:
// while the remaining need covers every key, each key is added once in
// order; the last partial pass shuffles the keys and takes a prefix. Every
// key therefore appears at least once, and repeats only exist because there
// are more locations than keys.
//
// When keys is empty, fallback keys (the starting slots) pad the pool
// instead, and with neither the filler item does. Asking for more points
// than locations fails with ErrPoolOverflow.
func FillItemPool(points, locationCount int, keys, fallback []string, rng Shuffler) ([]string, error) {
	if points > locationCount {
		return nil, fmt.Errorf("%w: %d points, %d locations", ErrPoolOverflow, points, locationCount)
	}

	pool := make([]string, 0, locationCount)
	for range points {
		pool = append(pool, model.ProgressPointItem)
	}

	working := append([]string(nil), keys...)
	if len(working) == 0 {
		working = append(working, fallback...)
	}
	if len(working) == 0 {
		working = append(working, model.FillerItem)
	}

	count := points
	for count < locationCount {
		need := locationCount - count
		if len(working) <= need {
			pool = append(pool, working...)
			count += len(working)
			continue
		}

		rng.Shuffle(len(working), func(i, j int) {
			working[i], working[j] = working[j], working[i]
		})
		pool = append(pool, working[:need]...)
		count = locationCount
	}

	return pool, nil
}

// Items resolves item names to model items.
func Items(names []string) ([]model.Item, error) {
	items := make([]model.Item, 0, len(names))
	for _, name := range names {
		item, err := model.NewItem(name)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
