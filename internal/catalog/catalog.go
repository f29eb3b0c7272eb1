package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/handiism/osuap/internal/catalog/dto"
	"github.com/handiism/osuap/internal/model"
)

var (
	// ErrInvalidSong is returned when a catalog entry fails validation.
	ErrInvalidSong = dto.ErrInvalidSong

	// ErrDuplicateSong is returned when two entries share a beatmapset id.
	ErrDuplicateSong = errors.New("duplicate song id")
)

// Catalog is an ordered, read-only list of songs with unique ids.
//
// The order is the order songs were loaded in. Nothing downstream
// reorders the catalog itself; the allocator shuffles its own copy.
type Catalog struct {
	songs []*model.Song
	byID  map[int64]*model.Song
}

// New builds a catalog from already-validated songs.
//
// Returns ErrDuplicateSong if two songs share an id.
func New(songs []*model.Song) (*Catalog, error) {
	c := &Catalog{
		songs: make([]*model.Song, 0, len(songs)),
		byID:  make(map[int64]*model.Song, len(songs)),
	}
	for _, s := range songs {
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSong, s.ID)
		}
		c.byID[s.ID] = s
		c.songs = append(c.songs, s)
	}
	return c, nil
}

// Songs returns the songs in catalog order. The slice is a copy; the songs
// themselves are shared and must not be modified.
func (c *Catalog) Songs() []*model.Song {
	out := make([]*model.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Song returns the song with the given id.
func (c *Catalog) Song(id int64) (*model.Song, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Parse reads a JSON array of catalog entries and validates every entry.
//
// Example input:
//
//	[{"id": 1, "title": "Song", "artist": "Artist", "length": 120,
//	  "nsfw": false, "loved": false,
//	  "beatmaps": [{"mode": "osu", "sr": 4.2}]}]
func Parse(r io.Reader) (*Catalog, error) {
	songs, err := parseSongs(r)
	if err != nil {
		return nil, err
	}
	return New(songs)
}

// LoadFile parses the catalog stored at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func parseSongs(r io.Reader) ([]*model.Song, error) {
	var entries []dto.JSONSong
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return toSongs(entries)
}

func toSongs(entries []dto.JSONSong) ([]*model.Song, error) {
	songs := make([]*model.Song, 0, len(entries))
	for i := range entries {
		song, err := entries[i].ToSong()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		songs = append(songs, song)
	}
	return songs, nil
}
