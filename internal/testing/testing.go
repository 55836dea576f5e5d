// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/dhkim-dev/cinewish/internal/catalog"
	"github.com/dhkim-dev/cinewish/internal/models"
)

// MockCatalog is a test double for [catalog.Service]. Pages maps page number
// to the result returned for any movie-list query; Err, when set, is returned
// by every call.
type MockCatalog struct {
	Pages     map[int]*models.Paged[models.Movie]
	GenreList []models.Genre
	Detail    *models.MovieDetail
	Err       error
	Calls     int
}

func (m *MockCatalog) page(page int) (*models.Paged[models.Movie], error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if page <= 0 {
		page = 1
	}
	result, ok := m.Pages[page]
	if !ok {
		return nil, fmt.Errorf("no fixture for page %d", page)
	}
	return result, nil
}

func (m *MockCatalog) Popular(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) NowPlaying(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) TopRated(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) Upcoming(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) Discover(ctx context.Context, opts catalog.DiscoverOpts) (*models.Paged[models.Movie], error) {
	return m.page(opts.Page)
}

func (m *MockCatalog) Search(ctx context.Context, query string, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) Movie(ctx context.Context, id int) (*models.MovieDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Detail, nil
}

func (m *MockCatalog) Recommendations(ctx context.Context, id, page int) (*models.Paged[models.Movie], error) {
	return m.page(page)
}

func (m *MockCatalog) Genres(ctx context.Context) ([]models.Genre, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.GenreList, nil
}

func (m *MockCatalog) Ping(ctx context.Context) error { return m.Err }

func (m *MockCatalog) ImageURL(path string, size catalog.ImageSize) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("https://img.test/%s%s", size, path)
}

func (m *MockCatalog) Name() string { return "mock" }

// PageOf builds a page envelope fixture from movies.
func PageOf(page, totalPages int, movies ...models.Movie) *models.Paged[models.Movie] {
	return &models.Paged[models.Movie]{
		Page:         page,
		TotalPages:   totalPages,
		TotalResults: totalPages * len(movies),
		Results:      movies,
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
