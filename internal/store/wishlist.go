package store

import (
	"github.com/charmbracelet/log"
	"github.com/dhkim-dev/cinewish/internal/models"
)

// Wishlist keeps the set of liked movie summaries, keyed by movie id.
// Toggle is the sole mutation primitive.
type Wishlist struct {
	kv      KV
	logger  *log.Logger
	entries []models.MovieSummary
}

// NewWishlist creates a Wishlist hydrated from the given backend.
func NewWishlist(kv KV, logger *log.Logger) *Wishlist {
	w := &Wishlist{kv: kv, logger: logger}
	getJSON(kv, WishlistKey, &w.entries)
	return w
}

func (w *Wishlist) persist() {
	if err := setJSON(w.kv, WishlistKey, w.entries); err != nil && w.logger != nil {
		w.logger.Warn("failed to persist wishlist", "error", err)
	}
}

// Toggle adds the movie if absent, removes it if present.
func (w *Wishlist) Toggle(movie models.MovieSummary) {
	for i, entry := range w.entries {
		if entry.ID == movie.ID {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			w.persist()
			return
		}
	}

	w.entries = append(w.entries, movie)
	w.persist()
}

// Contains reports whether a movie with the given id is wishlisted.
func (w *Wishlist) Contains(id int) bool {
	for _, entry := range w.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// Movies returns a copy of the wishlist in insertion order.
func (w *Wishlist) Movies() []models.MovieSummary {
	out := make([]models.MovieSummary, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of wishlisted movies.
func (w *Wishlist) Len() int {
	return len(w.entries)
}
