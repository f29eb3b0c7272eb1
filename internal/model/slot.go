package model

import "fmt"

// VictorySlot is the name of the sentinel slot paired with the goal song.
const VictorySlot = "Victory"

// SlotKind tells how a slot becomes playable.
type SlotKind int

const (
	// SlotStarting slots are unlocked when the session starts.
	SlotStarting SlotKind = iota

	// SlotIncluded slots must be unlocked by receiving their item.
	SlotIncluded

	// SlotVictory is the single win-condition slot.
	SlotVictory
)

// String returns the lowercase name of the kind.
func (k SlotKind) String() string {
	switch k {
	case SlotStarting:
		return "starting"
	case SlotIncluded:
		return "included"
	case SlotVictory:
		return "victory"
	default:
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
}

// Slot is a named placeholder in the progression graph. Slot names come
// from the static pool and do not depend on which song they end up with.
type Slot struct {
	Name string
	Kind SlotKind
}

// Pair binds one slot to the song it was assigned for a generation.
type Pair struct {
	Slot Slot
	Song *Song
}

// Location is a point in the graph that holds exactly one item.
type Location struct {
	// Name is "{slot} (Item {n})".
	Name string

	// Slot is the name of the slot owning the location.
	Slot string

	// Index is 1 or 2.
	Index int

	// ID is the network id of the location.
	ID int64
}

// LocationName returns the name of the n-th location of a slot.
func LocationName(slot string, n int) string {
	return fmt.Sprintf("%s (Item %d)", slot, n)
}

// ItemKind classifies items in the pool.
type ItemKind int

const (
	// ItemSlotUnlock opens the slot of the same name.
	ItemSlotUnlock ItemKind = iota

	// ItemProgressPoint counts toward the win condition.
	ItemProgressPoint

	// ItemFiller carries no progression. The allocator only places it
	// when a player has neither included nor starting slots to pad with.
	ItemFiller
)

// String returns the lowercase name of the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemSlotUnlock:
		return "unlock"
	case ItemProgressPoint:
		return "progress"
	case ItemFiller:
		return "filler"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Item is a single entry of the item pool.
type Item struct {
	Name string
	Kind ItemKind
	ID   int64
}
