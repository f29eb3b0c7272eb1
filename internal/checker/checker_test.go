package checker

import (
	"testing"
	"time"

	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func slotData(disableReduction bool) allocator.SlotData {
	pair := func(slot string, kind model.SlotKind, id int64) model.Pair {
		return model.Pair{Slot: model.Slot{Name: slot, Kind: kind}, Song: &model.Song{ID: id}}
	}
	return allocator.SlotData{
		Pairs: allocator.Pairs{
			pair("Song 1", model.SlotStarting, 11),
			pair("Song 2", model.SlotIncluded, 22),
			pair(model.VictorySlot, model.SlotVictory, 33),
		},
		PerformancePointsNeeded:    3,
		DisableDifficultyReduction: disableReduction,
	}
}

func all(string) bool { return true }

func play(set int64, offset int, mods ...string) Play {
	return Play{
		BeatmapsetID: set,
		BeatmapID:    set * 10,
		Length:       100,
		Passed:       true,
		Mods:         mods,
		CreatedAt:    base.Add(time.Duration(offset) * time.Minute),
	}
}

func TestCheck_MatchesPairedSlot(t *testing.T) {
	c := New(slotData(false), nil)

	ids := c.Check(play(22, 0), all)
	assert.Equal(t, []int64{model.BaseID + 2, model.BaseID + 3}, ids)
}

func TestCheck_KnownLocationsOnly(t *testing.T) {
	c := New(slotData(false), []int64{model.BaseID + 2})

	assert.Equal(t, []int64{model.BaseID + 2}, c.Check(play(22, 0), all))
}

func TestCheck_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		data     allocator.SlotData
		play     Play
		unlocked func(string) bool
	}{
		{"failed", slotData(false), Play{BeatmapsetID: 11, CreatedAt: base}, all},
		{"unpaired", slotData(false), play(99, 0), all},
		{"locked", slotData(false), play(22, 0), func(slot string) bool { return slot != "Song 2" }},
		{"reduction mod", slotData(true), play(11, 0, "HD", "ez"), all},
		{"victory has no locations", slotData(false), play(33, 0), all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data, nil)
			assert.Empty(t, c.Check(tt.play, tt.unlocked))
		})
	}
}

func TestCheck_ReductionAllowed(t *testing.T) {
	c := New(slotData(false), nil)
	assert.NotEmpty(t, c.Check(play(11, 0, "NF"), all))
}

func TestCheck_IgnoresRepeats(t *testing.T) {
	c := New(slotData(false), nil)

	require.NotEmpty(t, c.Check(play(11, 0), all))
	assert.Empty(t, c.Check(play(11, 0), all))
	assert.True(t, c.Seen(base))

	// same instant in another zone is the same play
	again := play(11, 0)
	again.CreatedAt = again.CreatedAt.In(time.FixedZone("X", 3600))
	assert.Empty(t, c.Check(again, all))
}

func TestCheck_SeenIsBounded(t *testing.T) {
	c := New(slotData(false), nil)
	for i := 0; i <= SeenLimit; i++ {
		c.Check(play(99, i), all)
	}

	assert.False(t, c.Seen(base), "oldest play should be forgotten")
	assert.True(t, c.Seen(base.Add(SeenLimit*time.Minute)))
	assert.Len(t, c.seen, SeenLimit)
	assert.Len(t, c.seenSet, SeenLimit)
}

func TestGoal(t *testing.T) {
	c := New(slotData(false), nil)
	assert.False(t, c.Goal(2))
	assert.True(t, c.Goal(3))
	assert.True(t, c.Goal(4))
}

func TestHintTracker(t *testing.T) {
	h := NewHintTracker()

	long := Play{BeatmapID: 1, Length: 500, Passed: true}
	assert.Equal(t, 2, h.Record(long))
	seconds, songs := h.Remaining()
	assert.Equal(t, HintSeconds-20, seconds)
	assert.Equal(t, HintSongs, songs)

	assert.Equal(t, 0, h.Record(long), "replayed beatmap")
	assert.Equal(t, 0, h.Record(Play{BeatmapID: 2, Length: 500}), "failed play")
}

func TestHintTracker_SongCount(t *testing.T) {
	h := NewHintTracker()
	for i := int64(1); i <= 3; i++ {
		assert.Equal(t, 0, h.Record(Play{BeatmapID: i, Length: 10, Passed: true}))
	}
	assert.Equal(t, 1, h.Record(Play{BeatmapID: 4, Length: 10, Passed: true}))

	seconds, songs := h.Remaining()
	assert.Equal(t, HintSeconds, seconds)
	assert.Equal(t, HintSongs, songs)
}
