package model

import "fmt"

const (
	// BaseID is the first network id used for items and locations.
	BaseID int64 = 727000000

	// SlotPoolSize is the number of generic slot names available. It covers
	// the largest starting + additional song counts a player can request.
	SlotPoolSize = 410

	// ProgressPointItem is the name of the progress-point token.
	ProgressPointItem = "Performance Points"

	// FillerItem is the name of the filler item.
	FillerItem = "Circle"
)

var (
	slotPool  []string
	slotIndex map[string]int
)

func init() {
	slotPool = make([]string, SlotPoolSize)
	slotIndex = make(map[string]int, SlotPoolSize)
	for i := range slotPool {
		name := fmt.Sprintf("Song %d", i+1)
		slotPool[i] = name
		slotIndex[name] = i
	}
}

// SlotPool returns the generic slot names in their fixed order. The
// returned slice is a copy.
func SlotPool() []string {
	out := make([]string, len(slotPool))
	copy(out, slotPool)
	return out
}

// SlotIndex returns the position of a slot name in the pool.
func SlotIndex(name string) (int, bool) {
	i, ok := slotIndex[name]
	return i, ok
}

// LocationID returns the network id of the n-th location (1 or 2) of a slot.
func LocationID(slot string, n int) (int64, bool) {
	i, ok := slotIndex[slot]
	if !ok || n < 1 || n > 2 {
		return 0, false
	}
	return BaseID + int64(2*i) + int64(n-1), true
}

// NewLocation builds the n-th location of a slot with its network id.
func NewLocation(slot string, n int) (Location, error) {
	id, ok := LocationID(slot, n)
	if !ok {
		return Location{}, fmt.Errorf("no location %d for slot %q", n, slot)
	}
	return Location{Name: LocationName(slot, n), Slot: slot, Index: n, ID: id}, nil
}

// NewItem returns the item with the given name.
func NewItem(name string) (Item, error) {
	switch name {
	case ProgressPointItem:
		return Item{Name: name, Kind: ItemProgressPoint, ID: BaseID + SlotPoolSize}, nil
	case FillerItem:
		return Item{Name: name, Kind: ItemFiller, ID: BaseID + SlotPoolSize + 1}, nil
	}
	i, ok := slotIndex[name]
	if !ok {
		return Item{}, fmt.Errorf("unknown item %q", name)
	}
	return Item{Name: name, Kind: ItemSlotUnlock, ID: BaseID + int64(i)}, nil
}
