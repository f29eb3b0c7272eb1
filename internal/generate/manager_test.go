package generate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/catalog"
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	songs := make([]*model.Song, n)
	for i := range songs {
		songs[i] = &model.Song{
			ID:           int64(100 + i),
			Title:        "Title",
			Artist:       "Artist",
			Length:       90,
			Difficulties: []model.Difficulty{{Mode: model.ModeStandard, StarRating: 4}},
		}
	}
	cat, err := catalog.New(songs)
	require.NoError(t, err)
	return cat
}

type recorder struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (r *recorder) record(e ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count(level ProgressLevel) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Level == level {
			n++
		}
	}
	return n
}

func TestManager_Run(t *testing.T) {
	rec := &recorder{}
	m := NewManager(config.DefaultSettings(), rec.record)
	m.SetCatalog(testCatalog(t, 120))

	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))
	require.NoError(t, m.AddPlayer("bob", config.DefaultOptions()))

	require.NoError(t, m.Run(context.Background(), 42))

	results := m.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "alice", results[0].Player)
	assert.Equal(t, "bob", results[1].Player)
	assert.NotEmpty(t, m.GenerationID())
	assert.Equal(t, 2, rec.count(LevelSuccess))
}

func TestManager_Run_PlayerFailureIsolated(t *testing.T) {
	rec := &recorder{}
	m := NewManager(config.DefaultSettings(), rec.record)
	m.SetCatalog(testCatalog(t, 60))

	strict := config.DefaultOptions()
	strict.MaximumLength = 30

	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))
	require.NoError(t, m.AddPlayer("strict", strict))

	err := m.Run(context.Background(), 1)
	require.ErrorIs(t, err, allocator.ErrInsufficientSongs)

	results := m.Results()
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.Equal(t, 1, rec.count(LevelError))
}

func TestManager_Run_Deterministic(t *testing.T) {
	cat := testCatalog(t, 100)

	run := func(names ...string) []*allocator.Result {
		m := NewManager(config.DefaultSettings(), nil)
		m.SetCatalog(cat)
		for _, name := range names {
			require.NoError(t, m.AddPlayer(name, config.DefaultOptions()))
		}
		require.NoError(t, m.Run(context.Background(), 7))
		return m.Results()
	}

	a := run("alice", "bob")
	b := run("alice", "bob", "carol")

	assert.Equal(t, a[0].Pairs, b[0].Pairs)
	assert.Equal(t, a[1].ItemPool, b[1].ItemPool)
	assert.NotEqual(t, a[0].Pairs, a[1].Pairs)
}

func TestManager_AddPlayer(t *testing.T) {
	m := NewManager(config.DefaultSettings(), nil)

	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))
	assert.ErrorIs(t, m.AddPlayer("alice", config.DefaultOptions()), ErrDuplicatePlayer)
	assert.Error(t, m.AddPlayer("", config.DefaultOptions()))

	bad := config.DefaultOptions()
	bad.StartingSongs = 1
	assert.ErrorIs(t, m.AddPlayer("bob", bad), config.ErrOutOfRange)

	assert.Len(t, m.Players(), 1)
}

func TestManager_Run_Preconditions(t *testing.T) {
	m := NewManager(config.DefaultSettings(), nil)
	assert.Error(t, m.Run(context.Background(), 1), "no catalog")

	m.SetCatalog(testCatalog(t, 10))
	assert.Error(t, m.Run(context.Background(), 1), "no players")
}

func TestManager_Run_Cancelled(t *testing.T) {
	m := NewManager(config.DefaultSettings(), nil)
	m.SetCatalog(testCatalog(t, 60))
	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx, 1), context.Canceled)
}

func TestManager_LoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	content := `[{"id": 1, "title": "A", "artist": "B", "length": 60, "nsfw": false, "loved": false,
		"beatmaps": [{"mode": "osu", "sr": 2.5}]}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings := config.DefaultSettings()
	settings.CatalogSources = []string{path}
	m := NewManager(settings, nil)

	require.NoError(t, m.LoadCatalog(context.Background()))
	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))
	assert.ErrorIs(t, m.Run(context.Background(), 1), allocator.ErrInsufficientSongs)
}

func TestManager_WriteSlotData(t *testing.T) {
	settings := config.DefaultSettings()
	settings.SlotDataFormat = "{seed}-{player}.json"
	m := NewManager(settings, nil)
	m.SetCatalog(testCatalog(t, 60))
	require.NoError(t, m.AddPlayer("alice", config.DefaultOptions()))
	require.NoError(t, m.AddPlayer("bob/2", config.DefaultOptions()))
	require.NoError(t, m.Run(context.Background(), 99))

	dir := t.TempDir()
	paths, err := m.WriteSlotData(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "99-alice.json"),
		filepath.Join(dir, "99-bob_2.json"),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.Equal(t, m.GenerationID(), envelope.GenerationID)
	assert.Equal(t, "alice", envelope.Player)
	assert.Equal(t, int64(99), envelope.Seed)
	assert.Len(t, envelope.SlotData.Pairs, len(m.Results()[0].Pairs))
}
