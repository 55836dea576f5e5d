package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dhkim-dev/cinewish/internal/models"
)

// pageSource fabricates a fixed-size catalog and records the pages requested.
type pageSource struct {
	mu         sync.Mutex
	totalPages int
	requested  []int
	err        error
}

func (s *pageSource) fetch(_ context.Context, page int) (*models.Paged[models.Movie], error) {
	s.mu.Lock()
	s.requested = append(s.requested, page)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return &models.Paged[models.Movie]{
		Page:         page,
		TotalPages:   s.totalPages,
		TotalResults: s.totalPages * 2,
		Results: []models.Movie{
			{ID: page * 10, Title: "a"},
			{ID: page*10 + 1, Title: "b"},
		},
	}, nil
}

func (s *pageSource) pages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.requested))
	copy(out, s.requested)
	return out
}

func TestPager(t *testing.T) {
	ctx := context.Background()

	t.Run("Load Populates First Page", func(t *testing.T) {
		src := &pageSource{totalPages: 5}
		p := NewPager(src.fetch)

		if err := p.Load(ctx); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if p.Page() != 1 || p.TotalPages() != 5 {
			t.Errorf("unexpected state: page=%d total=%d", p.Page(), p.TotalPages())
		}
		if len(p.Movies()) != 2 {
			t.Errorf("expected 2 movies, got %d", len(p.Movies()))
		}
	})

	t.Run("Navigation Replaces The Page", func(t *testing.T) {
		src := &pageSource{totalPages: 5}
		p := NewPager(src.fetch)
		p.Load(ctx)
		p.Next(ctx)

		if p.Page() != 2 {
			t.Errorf("expected page 2, got %d", p.Page())
		}
		if movies := p.Movies(); len(movies) != 2 || movies[0].ID != 20 {
			t.Errorf("expected page 2 results only, got %v", movies)
		}
	})

	t.Run("Clamps Below One", func(t *testing.T) {
		src := &pageSource{totalPages: 5}
		p := NewPager(src.fetch)
		p.Load(ctx)
		p.Prev(ctx)

		if p.Page() != 1 {
			t.Errorf("expected clamp to page 1, got %d", p.Page())
		}
	})

	t.Run("Clamps Above Total", func(t *testing.T) {
		src := &pageSource{totalPages: 3}
		p := NewPager(src.fetch)
		p.Load(ctx)

		if err := p.Go(ctx, 99); err != nil {
			t.Fatalf("go failed: %v", err)
		}
		if p.Page() != 3 {
			t.Errorf("expected clamp to page 3, got %d", p.Page())
		}
	})

	t.Run("Go Zero Requests Page One", func(t *testing.T) {
		src := &pageSource{totalPages: 3}
		p := NewPager(src.fetch)

		p.Go(ctx, 0)
		if pages := src.pages(); len(pages) != 1 || pages[0] != 1 {
			t.Errorf("expected request for page 1, got %v", pages)
		}
	})

	t.Run("Unknown Total Does Not Clamp Upward", func(t *testing.T) {
		// Before the first response the total page count is unknown, so a
		// forward jump goes through as requested.
		src := &pageSource{totalPages: 10}
		p := NewPager(src.fetch)

		p.Go(ctx, 7)
		if p.Page() != 7 {
			t.Errorf("expected page 7, got %d", p.Page())
		}
	})

	t.Run("Fetch Error Keeps Previous Page", func(t *testing.T) {
		src := &pageSource{totalPages: 5}
		p := NewPager(src.fetch)
		p.Load(ctx)

		src.err = errors.New("boom")
		if err := p.Next(ctx); err == nil {
			t.Fatal("expected error to surface")
		}
		if p.Page() != 1 {
			t.Errorf("failed navigation should keep page 1, got %d", p.Page())
		}
		if len(p.Movies()) != 2 {
			t.Error("failed navigation should keep previous results")
		}
	})

	t.Run("Stale Response Is Dropped", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var calls int
		var mu sync.Mutex

		fetch := func(_ context.Context, page int) (*models.Paged[models.Movie], error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(started)
				<-release
			}
			return &models.Paged[models.Movie]{
				Page:       page,
				TotalPages: 5,
				Results:    []models.Movie{{ID: page}},
			}, nil
		}

		p := NewPager(fetch)

		done := make(chan error, 1)
		go func() { done <- p.Go(context.Background(), 2) }()

		// Wait for the first fetch to be in flight, then supersede it.
		<-started
		if err := p.Go(context.Background(), 3); err != nil {
			t.Fatalf("second navigation failed: %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first navigation errored: %v", err)
		}

		if p.Page() != 3 {
			t.Errorf("stale response should not override, got page %d", p.Page())
		}
		if movies := p.Movies(); len(movies) != 1 || movies[0].ID != 3 {
			t.Errorf("expected page 3 results, got %v", movies)
		}
	})
}
