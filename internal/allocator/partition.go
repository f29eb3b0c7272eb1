package allocator

import "github.com/handiism/osuap/internal/model"

// Partition takes slot names from the front of the pool: the first
// starting names become starting slots, the next additional names become
// included slots. The pool is not shuffled, so slot names only depend on the
// counts. A pool shorter than requested yields fewer slots.
func Partition(pool []string, starting, additional int) (startingSlots, includedSlots []string) {
	starting = min(max(starting, 0), len(pool))
	end := min(starting+max(additional, 0), len(pool))

	startingSlots = append([]string(nil), pool[:starting]...)
	includedSlots = append([]string(nil), pool[starting:end]...)
	return startingSlots, includedSlots
}

// Slots lists every slot of a generation in pairing order: starting slots,
// then included slots, then the victory slot.
func Slots(starting, included []string) []model.Slot {
	slots := make([]model.Slot, 0, len(starting)+len(included)+1)
	for _, name := range starting {
		slots = append(slots, model.Slot{Name: name, Kind: model.SlotStarting})
	}
	for _, name := range included {
		slots = append(slots, model.Slot{Name: name, Kind: model.SlotIncluded})
	}
	return append(slots, model.Slot{Name: model.VictorySlot, Kind: model.SlotVictory})
}
