package allocator

import (
	"github.com/handiism/osuap/internal/model"
)

// Shuffler is the seeded random source a generation draws from. Both
// math/rand and math/rand/v2 *Rand satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Pairs is the ordered slot-to-song assignment of one generation.
type Pairs []model.Pair

// Song returns the song paired with a slot.
func (p Pairs) Song(slot string) (*model.Song, bool) {
	for _, pair := range p {
		if pair.Slot.Name == slot {
			return pair.Song, true
		}
	}
	return nil, false
}

// PairSongs shuffles a copy of the eligible songs and zips it positionally
// with the slots. The caller's slice is left untouched.
//
// Returns an *InsufficientSongsError when there are fewer eligible songs
// than slots.
func PairSongs(slots []model.Slot, eligible []*model.Song, rng Shuffler) (Pairs, error) {
	if len(eligible) < len(slots) {
		return nil, &InsufficientSongsError{Eligible: len(eligible), Required: len(slots)}
	}

	songs := append([]*model.Song(nil), eligible...)
	rng.Shuffle(len(songs), func(i, j int) {
		songs[i], songs[j] = songs[j], songs[i]
	})

	pairs := make(Pairs, len(slots))
	for i, slot := range slots {
		pairs[i] = model.Pair{Slot: slot, Song: songs[i]}
	}
	return pairs, nil
}
