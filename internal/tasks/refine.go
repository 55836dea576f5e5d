package tasks

import (
	"fmt"
	"sort"

	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"  // preserves source order
	SortPopularity SortKey = "popularity" // popularity descending
	SortRating     SortKey = "rating"     // vote average descending
	SortRelease    SortKey = "release"    // release year descending
)

// ParseSortKey validates a user-supplied sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortPopularity:
		return SortPopularity, nil
	case SortRating:
		return SortRating, nil
	case SortRelease:
		return SortRelease, nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", shared.ErrInvalidFlag, s)
}

// Filters narrows an in-memory result set. Zero values mean "no filter".
type Filters struct {
	GenreID   int     // genre membership, 0 for all
	MinRating float64 // vote average lower bound
	Year      int     // exact release year, 0 for all
}

// Refine applies the filters in order (genre, rating, year) and then the
// requested sort over the already-fetched results. It only narrows and
// reorders what is in memory: filters reflect the loaded pages, not the whole
// matching catalog.
func Refine(movies []models.Movie, f Filters, key SortKey) []models.Movie {
	out := make([]models.Movie, 0, len(movies))

	for _, m := range movies {
		if f.GenreID != 0 && !m.HasGenre(f.GenreID) {
			continue
		}
		if m.VoteAverage < f.MinRating {
			continue
		}
		if f.Year != 0 && m.Year() != f.Year {
			continue
		}
		out = append(out, m)
	}

	switch key {
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].VoteAverage > out[j].VoteAverage })
	case SortRelease:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year() > out[j].Year() })
	}

	return out
}

// YearOptions returns the distinct release years present in the result set,
// newest first. Used to build the year filter choices.
func YearOptions(movies []models.Movie) []int {
	seen := make(map[int]bool)
	var years []int
	for _, m := range movies {
		y := shared.ReleaseYear(m.ReleaseDate)
		if y != 0 && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
