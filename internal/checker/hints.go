package checker

// Hint thresholds: a hint is earned for every HintSeconds of newly passed
// play time, or after HintSongs new passes without one.
const (
	HintSeconds = 240
	HintSongs   = 4
)

// HintTracker counts passed plays toward hints for clients that only
// reward progress with hints.
type HintTracker struct {
	seconds int
	songs   int
	played  map[int64]struct{}
}

// NewHintTracker creates an empty HintTracker.
func NewHintTracker() *HintTracker {
	return &HintTracker{played: make(map[int64]struct{})}
}

// Record adds a play and returns how many hints it earns. Failed plays and
// beatmaps passed before count for nothing.
func (h *HintTracker) Record(play Play) int {
	if !play.Passed {
		return 0
	}
	if _, ok := h.played[play.BeatmapID]; ok {
		return 0
	}
	h.played[play.BeatmapID] = struct{}{}

	hints := 0
	h.seconds += play.Length
	h.songs++
	for h.seconds > HintSeconds {
		h.seconds -= HintSeconds
		h.songs = 0
		hints++
	}
	if h.songs >= HintSongs {
		h.songs = 0
		h.seconds = 0
		hints++
	}
	return hints
}

// Remaining returns the play time and the number of passes still needed
// for the next hint, whichever comes first.
func (h *HintTracker) Remaining() (seconds, songs int) {
	return HintSeconds - h.seconds, HintSongs - h.songs
}
