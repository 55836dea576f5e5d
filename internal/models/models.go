package models

import "github.com/dhkim-dev/cinewish/internal/shared"

// Movie represents a single catalog record as returned by TMDB list endpoints.
//
// Transient: lives only in view state, never persisted as-is.
type Movie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
}

// Year returns the release year, or 0 when the release date is absent or malformed.
func (m Movie) Year() int {
	return shared.ReleaseYear(m.ReleaseDate)
}

// HasGenre reports whether the movie carries the given genre id.
func (m Movie) HasGenre(id int) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// Summary projects the movie down to the fields the wishlist persists.
func (m Movie) Summary() MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
	}
}

// MovieDetail is the full single-movie record from the detail endpoint.
// Unlike list entries it carries resolved genre objects instead of ids.
type MovieDetail struct {
	Movie
	Genres  []Genre `json:"genres"`
	Runtime int     `json:"runtime"`
	Tagline string  `json:"tagline"`
	Status  string  `json:"status"`
}

// Genre is a TMDB genre record.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Paged is the TMDB page envelope shared by all list endpoints.
type Paged[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

// HasMore reports whether pages beyond the current one exist.
func (p Paged[T]) HasMore() bool {
	return p.Page < p.TotalPages
}

// MovieSummary is the wishlist projection of a Movie: only the fields needed
// for display are retained.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// StoredUser is a registered account record. The password is obfuscated with a
// reversible transform, not hashed; this is a demo credential store, not a
// security control.
type StoredUser struct {
	Email           string `json:"email"`
	PasswordEncoded string `json:"password_encoded"`
}

// Session is the singleton logged-in identity.
type Session struct {
	Email    string `json:"email"`
	Remember bool   `json:"remember"`
}

// Result carries the outcome of a local, synchronous operation (registration,
// login, validation). Failures are values, not errors: they render as form
// feedback rather than aborting the caller.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
