package tasks

import (
	"context"
	"sync"

	"github.com/dhkim-dev/cinewish/internal/models"
)

// Feed is the infinite-accumulation list mode: successive pages are appended
// rather than replacing the displayed page. At most one fetch is in flight at
// a time, and loading stops once the source is exhausted.
//
// Reset swaps the page source (e.g. a new search query) and bumps the
// generation counter so a result from the previous source that arrives late
// is discarded instead of being appended to the new list.
type Feed struct {
	mu         sync.Mutex
	fetch      FetchPage
	movies     []models.Movie
	page       int
	hasMore    bool
	inFlight   bool
	generation uint64
}

// NewFeed creates an empty Feed over the given page source.
func NewFeed(fetch FetchPage) *Feed {
	return &Feed{fetch: fetch, hasMore: true}
}

// Reset clears accumulated results and replaces the page source. A nil fetch
// keeps the current source.
func (f *Feed) Reset(fetch FetchPage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fetch != nil {
		f.fetch = fetch
	}
	f.movies = nil
	f.page = 0
	f.hasMore = true
	f.inFlight = false
	f.generation++
}

// LoadMore fetches the next page and appends its results. Returns false
// without fetching when a load is already pending or the feed is exhausted;
// returns true when new results were applied.
func (f *Feed) LoadMore(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.inFlight || !f.hasMore {
		f.mu.Unlock()
		return false, nil
	}
	f.inFlight = true
	gen := f.generation
	next := f.page + 1
	fetch := f.fetch
	f.mu.Unlock()

	result, err := fetch(ctx, next)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		// Feed was reset while this fetch was out; drop the stale page.
		return false, nil
	}

	f.inFlight = false
	if err != nil {
		return false, err
	}

	f.movies = append(f.movies, result.Results...)
	f.page = result.Page
	f.hasMore = result.Page < result.TotalPages
	return true, nil
}

// HasMore reports whether further pages remain.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Loading reports whether a fetch is currently pending.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Movies returns a copy of all accumulated results in fetch order.
func (f *Feed) Movies() []models.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Movie, len(f.movies))
	copy(out, f.movies)
	return out
}

// Page returns the number of the last applied page (0 before any load).
func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}
