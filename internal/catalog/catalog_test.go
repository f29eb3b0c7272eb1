package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apphttp "github.com/handiism/osuap/internal/http"
	"github.com/handiism/osuap/internal/model"
)

func TestLoadFile(t *testing.T) {
	cat, err := LoadFile("testdata/catalog.json")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cat.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", cat.Len())
	}

	songs := cat.Songs()
	if songs[0].ID != 1001 || songs[4].ID != 1005 {
		t.Errorf("catalog order not preserved: first %d, last %d", songs[0].ID, songs[4].ID)
	}

	song, ok := cat.Song(1005)
	if !ok {
		t.Fatal("Song(1005) not found")
	}
	if song.Difficulties[0].Mode != model.Mode4K {
		t.Errorf("mode = %q, want lowercased %q", song.Difficulties[0].Mode, model.Mode4K)
	}

	padoru, _ := cat.Song(1004)
	if !padoru.Explicit {
		t.Error("nsfw flag should map to Explicit")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "duplicate id",
			input:   `[{"id":1,"length":1,"beatmaps":[]},{"id":1,"length":2,"beatmaps":[]}]`,
			wantErr: ErrDuplicateSong,
		},
		{
			name:    "missing length",
			input:   `[{"id":1,"beatmaps":[]}]`,
			wantErr: ErrInvalidSong,
		},
		{
			name:    "zero id",
			input:   `[{"id":0,"length":1}]`,
			wantErr: ErrInvalidSong,
		},
		{
			name:    "unknown mode",
			input:   `[{"id":1,"length":1,"beatmaps":[{"mode":"mania","sr":1}]}]`,
			wantErr: ErrInvalidSong,
		},
		{
			name:    "missing star rating",
			input:   `[{"id":1,"length":1,"beatmaps":[{"mode":"osu"}]}]`,
			wantErr: ErrInvalidSong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("expected error for non-array catalog")
	}
}

func TestLoader_MergesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":2001,"title":"Remote","artist":"Someone","length":90,"beatmaps":[{"mode":"osu","sr":2.0}]}]`))
	}))
	defer srv.Close()

	loader := NewLoader(apphttp.NewClient(), RetryPolicy{MaxRetries: 1})
	cat, err := loader.Load(context.Background(), []string{srv.URL, "testdata/catalog.json"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	songs := cat.Songs()
	if len(songs) != 6 {
		t.Fatalf("got %d songs, want 6", len(songs))
	}
	if songs[0].ID != 2001 {
		t.Errorf("first song = %d, want remote song 2001", songs[0].ID)
	}
}

func TestLoader_DuplicateAcrossSources(t *testing.T) {
	loader := NewLoader(apphttp.NewClient(), RetryPolicy{})
	_, err := loader.Load(context.Background(), []string{"testdata/catalog.json", "testdata/catalog.json"})
	if !errors.Is(err, ErrDuplicateSong) {
		t.Errorf("error = %v, want ErrDuplicateSong", err)
	}
}

func TestLoader_RetriesTemporaryFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	loader := NewLoader(apphttp.NewClient(), RetryPolicy{MaxRetries: 3, Cooldown: 0.001, Exponent: 1})
	cat, err := loader.Load(context.Background(), []string{srv.URL})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
	if calls.Load() != 3 {
		t.Errorf("server called %d times, want 3", calls.Load())
	}
}

func TestLoader_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	loader := NewLoader(apphttp.NewClient(), RetryPolicy{MaxRetries: 5, Cooldown: 0.001, Exponent: 1})
	if _, err := loader.Load(context.Background(), []string{srv.URL}); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}
}

func TestLoader_NoSources(t *testing.T) {
	if _, err := NewLoader(apphttp.NewClient(), RetryPolicy{}).Load(context.Background(), nil); err == nil {
		t.Error("expected error for empty source list")
	}
}
