package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
)

var _ list.Item = movieItem{}

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie      models.Movie
	wishlisted bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }

func (i movieItem) Title() string {
	if i.wishlisted {
		return "♥ " + i.movie.Title
	}
	return i.movie.Title
}

func (i movieItem) Description() string {
	desc := "★" + shared.FormatRating(i.movie.VoteAverage)
	if y := i.movie.Year(); y != 0 {
		desc = fmt.Sprintf("%s • %d", desc, y)
	}
	return desc
}
