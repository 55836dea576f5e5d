// TMDB implementation of [Service]
//
// Endpoint shapes based on https://developer.themoviedb.org/reference
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	defaultLanguage     = "ko-KR"
	defaultRegion       = "KR"
	defaultRateLimit    = 10.0
)

// TMDBClient implements [Service] against the TMDB v3 API.
//
// Authentication is either the v3 api_key query parameter or a v4 read access
// token sent as a bearer header via [oauth2]; the token wins when both are set.
type TMDBClient struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	region       string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *log.Logger
}

// TMDBOpts contains construction options for a TMDBClient.
type TMDBOpts struct {
	BaseURL         string
	ImageBaseURL    string
	APIKey          string
	ReadAccessToken string
	Language        string
	Region          string
	HTTPClient      *http.Client
	RateLimit       float64 // requests per second
	Logger          *log.Logger
}

// NewTMDBClient creates a TMDB catalog client. Either APIKey or
// ReadAccessToken must be set.
func NewTMDBClient(opts TMDBOpts) (*TMDBClient, error) {
	if opts.APIKey == "" && opts.ReadAccessToken == "" {
		return nil, shared.ErrMissingAPIKey
	}

	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = defaultImageBaseURL
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	if opts.Region == "" {
		opts.Region = defaultRegion
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	httpClient := opts.HTTPClient
	apiKey := opts.APIKey
	if opts.ReadAccessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.ReadAccessToken, TokenType: "Bearer"})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, opts.HTTPClient)
		httpClient = oauth2.NewClient(ctx, src)
		apiKey = ""
	}

	return &TMDBClient{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		apiKey:       apiKey,
		language:     opts.Language,
		region:       opts.Region,
		httpClient:   httpClient,
		limiter:      rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		logger:       opts.Logger,
	}, nil
}

func (c *TMDBClient) Name() string {
	return "TMDB"
}

// doRequest performs a rate-limited GET against the TMDB API and decodes the
// JSON response into result. Non-2xx responses wrap [shared.ErrAPIRequest].
func (c *TMDBClient) doRequest(ctx context.Context, path string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("language", c.language)
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	apiURL := c.baseURL + path + "?" + params.Encode()
	requestID := shared.GenerateID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("catalog request rejected", "path", path, "request_id", requestID, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s returned status %d", shared.ErrAPIRequest, path, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// moviePage fetches a paged movie list endpoint with the fixed region param.
func (c *TMDBClient) moviePage(ctx context.Context, path string, page int) (*models.Paged[models.Movie], error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("region", c.region)

	var result models.Paged[models.Movie]
	if err := c.doRequest(ctx, path, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Popular retrieves the popular movie list for the given page.
func (c *TMDBClient) Popular(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return c.moviePage(ctx, "/movie/popular", page)
}

// NowPlaying retrieves movies currently in theaters.
func (c *TMDBClient) NowPlaying(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return c.moviePage(ctx, "/movie/now_playing", page)
}

// TopRated retrieves the top-rated movie list.
func (c *TMDBClient) TopRated(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return c.moviePage(ctx, "/movie/top_rated", page)
}

// Upcoming retrieves upcoming releases.
func (c *TMDBClient) Upcoming(ctx context.Context, page int) (*models.Paged[models.Movie], error) {
	return c.moviePage(ctx, "/movie/upcoming", page)
}

// Discover retrieves genre-filtered discovery results.
func (c *TMDBClient) Discover(ctx context.Context, opts DiscoverOpts) (*models.Paged[models.Movie], error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("region", c.region)

	if len(opts.GenreIDs) > 0 {
		ids := make([]string, len(opts.GenreIDs))
		for i, id := range opts.GenreIDs {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if opts.SortBy != "" {
		params.Set("sort_by", opts.SortBy)
	}

	var result models.Paged[models.Movie]
	if err := c.doRequest(ctx, "/discover/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search retrieves free-text search results for the given page.
func (c *TMDBClient) Search(ctx context.Context, query string, page int) (*models.Paged[models.Movie], error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var result models.Paged[models.Movie]
	if err := c.doRequest(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Movie retrieves a single movie's detail record.
func (c *TMDBClient) Movie(ctx context.Context, id int) (*models.MovieDetail, error) {
	var detail models.MovieDetail
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Recommendations retrieves movies recommended for the given movie.
func (c *TMDBClient) Recommendations(ctx context.Context, id, page int) (*models.Paged[models.Movie], error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var result models.Paged[models.Movie]
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/recommendations", id), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres retrieves the movie genre list.
func (c *TMDBClient) Genres(ctx context.Context) ([]models.Genre, error) {
	var result struct {
		Genres []models.Genre `json:"genres"`
	}
	if err := c.doRequest(ctx, "/genre/movie/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Genres, nil
}

// Ping calls the configuration endpoint to verify the configured credentials.
func (c *TMDBClient) Ping(ctx context.Context) error {
	return c.doRequest(ctx, "/configuration", nil, nil)
}

// ImageURL builds a fully qualified CDN URL for an image path fragment.
// Returns "" when the path is absent so callers render a placeholder.
func (c *TMDBClient) ImageURL(path string, size ImageSize) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = ImageW300
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, size, path)
}
