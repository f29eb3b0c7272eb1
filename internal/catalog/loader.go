package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/handiism/osuap/internal/catalog/dto"
	"github.com/handiism/osuap/internal/http"
	"github.com/handiism/osuap/internal/model"
	"golang.org/x/sync/errgroup"
)

// RetryPolicy controls how remote catalog fetches are retried.
//
// The wait before retry n (0-based) is Cooldown * Exponent^n seconds.
type RetryPolicy struct {
	MaxRetries int
	Cooldown   float64
	Exponent   float64
}

// Loader reads catalogs from local files and remote URLs.
//
// Example:
//
//	loader := catalog.NewLoader(http.NewClient(), catalog.RetryPolicy{MaxRetries: 3, Cooldown: 0.2, Exponent: 4})
//	cat, err := loader.Load(ctx, []string{"base.json", "https://example.com/extra.json"})
type Loader struct {
	client *http.Client
	retry  RetryPolicy
	limit  int
}

// NewLoader creates a Loader. A MaxRetries below 1 is treated as 1.
func NewLoader(client *http.Client, retry RetryPolicy) *Loader {
	if retry.MaxRetries < 1 {
		retry.MaxRetries = 1
	}
	return &Loader{client: client, retry: retry, limit: 4}
}

// Load reads every source and merges them into one catalog.
//
// Sources are read concurrently but merged in the order given, so the
// resulting catalog order only depends on the source list. Song ids must be
// unique across all sources.
func (l *Loader) Load(ctx context.Context, sources []string) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, errors.New("no catalog sources given")
	}

	parts := make([][]*model.Song, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for i, src := range sources {
		g.Go(func() error {
			songs, err := l.loadSource(ctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			parts[i] = songs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*model.Song
	for _, p := range parts {
		all = append(all, p...)
	}
	return New(all)
}

func (l *Loader) loadSource(ctx context.Context, src string) ([]*model.Song, error) {
	if !isRemote(src) {
		c, err := LoadFile(src)
		if err != nil {
			return nil, err
		}
		return c.songs, nil
	}
	return l.fetch(ctx, src)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]*model.Song, error) {
	var (
		entries []dto.JSONSong
		err     error
	)
	for tries := 0; tries < l.retry.MaxRetries; tries++ {
		err = l.client.GetJSON(ctx, url, &entries)
		if err == nil || !retryable(err) || ctx.Err() != nil {
			break
		}
		if tries+1 < l.retry.MaxRetries {
			l.waitForRetry(ctx, tries)
		}
	}
	if err != nil {
		return nil, err
	}
	return toSongs(entries)
}

func (l *Loader) waitForRetry(ctx context.Context, tries int) {
	cooldown := l.retry.Cooldown * math.Pow(l.retry.Exponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

// retryable reports whether a failed fetch is worth repeating. Decoding
// errors and client-side HTTP statuses are not.
func retryable(err error) bool {
	var status *http.StatusError
	if errors.As(err, &status) {
		return status.Temporary()
	}
	return !errors.Is(err, http.ErrDecode)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
