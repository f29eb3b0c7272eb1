package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/osuap/internal/model"
)

// ErrInvalidSong is returned when a catalog entry fails validation.
var ErrInvalidSong = errors.New("invalid song")

// JSONBeatmap is one difficulty as stored in the catalog JSON.
type JSONBeatmap struct {
	Mode string   `json:"mode"`
	SR   *float64 `json:"sr"`
}

// JSONSong is one beatmapset as stored in the catalog JSON.
type JSONSong struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Length   *int          `json:"length"`
	NSFW     bool          `json:"nsfw"`
	Loved    bool          `json:"loved"`
	Beatmaps []JSONBeatmap `json:"beatmaps"`
}

// ToSong validates the entry and converts it to a model.Song.
//
// Mode tags are lowercased ("4K" becomes "4k"). An entry is rejected when
// its id is not positive, its length is missing or negative, or any
// difficulty has an unknown mode or a missing or negative star rating.
func (js *JSONSong) ToSong() (*model.Song, error) {
	if js.ID <= 0 {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidSong, js.ID)
	}
	if js.Length == nil || *js.Length < 0 {
		return nil, fmt.Errorf("%w %d: missing or negative length", ErrInvalidSong, js.ID)
	}

	song := &model.Song{
		ID:           js.ID,
		Title:        js.Title,
		Artist:       js.Artist,
		Length:       *js.Length,
		Explicit:     js.NSFW,
		Loved:        js.Loved,
		Difficulties: make([]model.Difficulty, 0, len(js.Beatmaps)),
	}

	for i, jb := range js.Beatmaps {
		mode := model.Mode(strings.ToLower(strings.TrimSpace(jb.Mode)))
		if !mode.Valid() {
			return nil, fmt.Errorf("%w %d: beatmap %d has unknown mode %q", ErrInvalidSong, js.ID, i, jb.Mode)
		}
		if jb.SR == nil || *jb.SR < 0 {
			return nil, fmt.Errorf("%w %d: beatmap %d has missing or negative star rating", ErrInvalidSong, js.ID, i)
		}
		song.Difficulties = append(song.Difficulties, model.Difficulty{Mode: mode, StarRating: *jb.SR})
	}

	return song, nil
}
