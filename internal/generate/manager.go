package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/catalog"
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/http"
	ioutils "github.com/handiism/osuap/internal/io"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrDuplicatePlayer is returned by AddPlayer for a name already added.
var ErrDuplicatePlayer = errors.New("duplicate player")

// Player is one participant of a multiworld generation.
type Player struct {
	Name    string
	Options *config.Options
}

// Envelope is the file written per player: the slot data plus enough
// context to tell generations apart.
type Envelope struct {
	GenerationID string             `json:"generation_id"`
	Player       string             `json:"player"`
	Seed         int64              `json:"seed"`
	SlotData     allocator.SlotData `json:"slot_data"`
}

// Manager coordinates the generation of every player against one catalog.
type Manager struct {
	settings *config.Settings
	loader   *catalog.Loader
	catalog  *catalog.Catalog

	players []Player
	results []*allocator.Result

	generationID string
	seed         int64

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new generation Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		loader:     catalog.NewLoader(http.NewClient(), settings.ToRetryPolicy()),
		onProgress: onProgress,
	}
}

// PlayerRNG returns the random source of the player at index for a master
// seed. A player's draws depend only on the seed and its own position.
func PlayerRNG(seed int64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(index)))
}

// LoadCatalog reads the catalog from the configured sources.
func (m *Manager) LoadCatalog(ctx context.Context) error {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Loading catalog from %d source(s)", len(m.settings.CatalogSources)), Level: LevelVerbose})

	cat, err := m.loader.Load(ctx, m.settings.CatalogSources)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error loading catalog: %v", err), Level: LevelError})
		return err
	}

	m.SetCatalog(cat)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded catalog: %d songs", cat.Len()), Level: LevelInfo})
	return nil
}

// SetCatalog replaces the catalog used by Run.
func (m *Manager) SetCatalog(cat *catalog.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = cat
}

// AddPlayer registers a player. Options are validated here so that Run
// only fails for reasons that depend on the catalog.
func (m *Manager) AddPlayer(name string, opts *config.Options) error {
	if name == "" {
		return errors.New("player name must not be empty")
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("player %s: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Name == name {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
	}
	m.players = append(m.players, Player{Name: name, Options: opts})
	return nil
}

// Players returns the registered players in the order they were added.
func (m *Manager) Players() []Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Player(nil), m.players...)
}

// Run generates every player concurrently.
//
// A failing player does not stop the others. The returned error joins
// every player's failure; results of the players that succeeded are still
// available from Results.
func (m *Manager) Run(ctx context.Context, seed int64) error {
	m.mu.Lock()
	if m.catalog == nil {
		m.mu.Unlock()
		return errors.New("no catalog loaded")
	}
	songs := m.catalog.Songs()
	players := append([]Player(nil), m.players...)
	m.seed = seed
	m.generationID = uuid.NewString()
	m.results = make([]*allocator.Result, len(players))
	m.mu.Unlock()

	if len(players) == 0 {
		return errors.New("no players added")
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Generating %d player(s) with seed %d", len(players), seed), Level: LevelInfo})

	errs := make([]error, len(players))

	var g errgroup.Group
	g.SetLimit(max(1, m.settings.MaxConcurrentPlayers))
	for i, player := range players {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			result, err := allocator.Generate(player.Name, songs, player.Options, PlayerRNG(seed, i))
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error generating %s: %v", player.Name, err), Level: LevelError})
				errs[i] = err
				return nil
			}

			m.mu.Lock()
			m.results[i] = result
			m.mu.Unlock()

			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Generated %s: %d songs, %d locations, %d points to win",
					player.Name, len(result.Pairs), len(result.Locations), result.Goal.Count),
				Level: LevelSuccess,
			})
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// Results returns the results of the last Run in player order. Players
// that failed have a nil entry.
func (m *Manager) Results() []*allocator.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*allocator.Result(nil), m.results...)
}

// GenerationID returns the id of the last Run.
func (m *Manager) GenerationID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generationID
}

// WriteSlotData writes one envelope per successful player and returns the
// written paths. An empty dir uses the configured output path. Both the
// directory and the file name accept the {player} and {seed} placeholders.
func (m *Manager) WriteSlotData(ctx context.Context, dir string) ([]string, error) {
	m.mu.RLock()
	results := append([]*allocator.Result(nil), m.results...)
	id, seed := m.generationID, m.seed
	m.mu.RUnlock()

	if dir == "" {
		dir = m.settings.OutputPath
	}

	var paths []string
	for _, result := range results {
		if result == nil {
			continue
		}

		values := map[string]string{
			"player": result.Player,
			"seed":   strconv.FormatInt(seed, 10),
		}
		path := filepath.Join(ioutils.ExpandPath(dir, values), ioutils.ExpandPath(m.settings.SlotDataFormat, values))

		envelope := Envelope{
			GenerationID: id,
			Player:       result.Player,
			Seed:         seed,
			SlotData:     result.SlotData(),
		}
		if err := ioutils.WriteJSON(ctx, path, envelope); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing slot data for %s: %v", result.Player, err), Level: LevelError})
			return paths, err
		}

		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose})
		paths = append(paths, path)
	}

	return paths, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
