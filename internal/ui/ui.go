package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dhkim-dev/cinewish/internal/catalog"
	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/store"
	"github.com/dhkim-dev/cinewish/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FeedView ViewState = iota
	DetailView
)

// loadThreshold triggers the next page load when the cursor is this close to
// the end of the accumulated list.
const loadThreshold = 5

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   catalog.Service
	wishlist  *store.Wishlist
	feed      *tasks.Feed
	movieList list.Model
	detail    *models.MovieDetail
	width     int
	height    int
	loading   bool
	err       error
	help      help.Model
	keys      keyMap
}

type pageLoadedMsg struct {
	applied bool
	err     error
}

type detailLoadedMsg struct {
	detail *models.MovieDetail
	err    error
}

// NewModel creates a new TUI model browsing the given feed.
func NewModel(ctx context.Context, svc catalog.Service, wishlist *store.Wishlist, feed *tasks.Feed, title string) *Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)

	return &Model{
		ctx:       ctx,
		view:      FeedView,
		catalog:   svc,
		wishlist:  wishlist,
		feed:      feed,
		movieList: l,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init starts the first page load.
func (m *Model) Init() tea.Cmd {
	return m.loadMore()
}

// loadMore returns a command fetching the feed's next page. The feed itself
// suppresses duplicate in-flight loads and exhausted sources.
func (m *Model) loadMore() tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		applied, err := m.feed.LoadMore(m.ctx)
		return pageLoadedMsg{applied: applied, err: err}
	}
}

// loadDetail returns a command fetching the selected movie's detail record.
func (m *Model) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.Movie(m.ctx, id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

// syncItems rebuilds the list items from the feed, preserving the cursor.
func (m *Model) syncItems() {
	movies := m.feed.Movies()
	items := make([]list.Item, len(movies))
	for i, movie := range movies {
		items[i] = movieItem{movie: movie, wishlisted: m.wishlist.Contains(movie.ID)}
	}

	idx := m.movieList.Index()
	m.movieList.SetItems(items)
	if idx < len(items) {
		m.movieList.Select(idx)
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.movieList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case FeedView:
			return m.handleFeedKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.applied {
			m.syncItems()
		}
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail = msg.detail
		m.view = DetailView
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.enter):
		if item, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.loadDetail(item.movie.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.movieList.SelectedItem().(movieItem); ok {
			m.wishlist.Toggle(item.movie.Summary())
			m.syncItems()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)

	// Near the end of the accumulated list: pull the next page.
	if !m.loading && m.feed.HasMore() && m.movieList.Index() >= len(m.movieList.Items())-loadThreshold {
		return m, tea.Batch(cmd, m.loadMore())
	}

	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.view = FeedView
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.toggle):
		if m.detail != nil {
			m.wishlist.Toggle(m.detail.Summary())
			m.syncItems()
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case DetailView:
		return m.renderDetail()
	default:
		return m.renderFeed()
	}
}

func (m *Model) renderFeed() string {
	view := m.movieList.View()

	status := ""
	if m.loading {
		status = styles.warn.Render("loading…")
	} else if !m.feed.HasMore() {
		status = styles.help.Render("end of results")
	}

	return fmt.Sprintf("%s\n%s\n%s", view, status, m.help.View(m.keys))
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.warn.Render("loading…")
	}

	d := m.detail
	out := styles.title.Render(d.Title) + "\n"

	if d.Tagline != "" {
		out += styles.help.Render(d.Tagline) + "\n"
	}

	out += fmt.Sprintf("\nRating: %.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
	if d.ReleaseDate != "" {
		out += fmt.Sprintf("Released: %s\n", d.ReleaseDate)
	}
	if d.Runtime > 0 {
		out += fmt.Sprintf("Runtime: %d min\n", d.Runtime)
	}

	if len(d.Genres) > 0 {
		out += "Genres:"
		for _, g := range d.Genres {
			out += " " + g.Name
		}
		out += "\n"
	}

	if m.wishlist.Contains(d.ID) {
		out += styles.ok.Render("\n♥ wishlisted") + "\n"
	}

	if d.Overview != "" {
		out += "\n" + d.Overview + "\n"
	}

	if url := m.catalog.ImageURL(d.PosterPath, catalog.ImageW500); url != "" {
		out += styles.help.Render("\n"+url) + "\n"
	}

	out += styles.help.Render("\nesc back • w wishlist • q quit")
	return out
}
