package tasks

import (
	"context"
	"sync"

	"github.com/dhkim-dev/cinewish/internal/models"
)

// Pager is the table/paged list mode: it holds exactly one page of results
// plus the current page number and total page count, refetching on every
// navigation. Requested pages clamp into [1, totalPages].
//
// Safe for concurrent use; a generation counter discards responses that were
// superseded by a later navigation.
type Pager struct {
	mu         sync.Mutex
	fetch      FetchPage
	movies     []models.Movie
	page       int
	totalPages int
	generation uint64
}

// NewPager creates a Pager over the given page source.
func NewPager(fetch FetchPage) *Pager {
	return &Pager{fetch: fetch, page: 1}
}

// Load fetches the current page. Call once after construction to populate.
func (p *Pager) Load(ctx context.Context) error {
	p.mu.Lock()
	page := p.page
	p.mu.Unlock()
	return p.Go(ctx, page)
}

// Go navigates to the requested page, clamped to [1, totalPages], and
// refetches. A response that lost a navigation race is dropped silently.
func (p *Pager) Go(ctx context.Context, page int) error {
	p.mu.Lock()
	if page < 1 {
		page = 1
	}
	if p.totalPages > 0 && page > p.totalPages {
		page = p.totalPages
	}
	p.generation++
	gen := p.generation
	fetch := p.fetch
	p.mu.Unlock()

	result, err := fetch(ctx, page)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		// A later navigation superseded this fetch.
		return nil
	}

	p.movies = result.Results
	p.page = result.Page
	p.totalPages = result.TotalPages
	return nil
}

// Next navigates one page forward.
func (p *Pager) Next(ctx context.Context) error {
	p.mu.Lock()
	page := p.page + 1
	p.mu.Unlock()
	return p.Go(ctx, page)
}

// Prev navigates one page back.
func (p *Pager) Prev(ctx context.Context) error {
	p.mu.Lock()
	page := p.page - 1
	p.mu.Unlock()
	return p.Go(ctx, page)
}

// Movies returns a copy of the currently held page.
func (p *Pager) Movies() []models.Movie {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Movie, len(p.movies))
	copy(out, p.movies)
	return out
}

// Page returns the current page number.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// TotalPages returns the total page count reported by the last fetch.
func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}
