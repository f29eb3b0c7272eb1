package allocator

import (
	"errors"
	"fmt"
)

// ErrInsufficientSongs is returned when the eligible catalog cannot supply
// a distinct song for every slot, including the victory slot. It is not
// retryable: the player's constraints have to be loosened.
var ErrInsufficientSongs = errors.New("not enough eligible songs")

// ErrPoolOverflow is returned when there are more progress points than
// locations to hold them.
var ErrPoolOverflow = errors.New("more progress points than locations")

// InsufficientSongsError carries the counts behind an ErrInsufficientSongs.
type InsufficientSongsError struct {
	Player   string
	Eligible int
	Required int
}

func (e *InsufficientSongsError) Error() string {
	msg := fmt.Sprintf("settings cannot generate enough songs: %d eligible, %d required", e.Eligible, e.Required)
	if e.Player == "" {
		return msg
	}
	return "player " + e.Player + ": " + msg
}

func (e *InsufficientSongsError) Unwrap() error {
	return ErrInsufficientSongs
}
