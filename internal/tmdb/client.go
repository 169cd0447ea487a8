// Package tmdb implements the movie catalog capability against the TMDB v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/pscheid92/moviepulse/internal/domain"
	"github.com/pscheid92/moviepulse/internal/metrics"
	"github.com/pscheid92/moviepulse/internal/platform/retry"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	requestTimeout = 15 * time.Second

	// TMDB allows ~50 requests/second per API key; stay under it.
	requestsPerSecond = 40
)

var defaultRetryPolicy = retry.Policy{
	MaxAttempts:      3,
	InitialBackoff:   250 * time.Millisecond,
	RateLimitBackoff: 2 * time.Second,
}

// Client is a TMDB API client implementing domain.Catalog.
type Client struct {
	apiKey     string
	baseURL    string
	maxReviews int
	httpClient *http.Client
	limiter    *rate.Limiter
	policy     retry.Policy
}

// NewClient creates a TMDB client. baseURL may be empty to use the public
// API; tests point it at a local server. maxReviews caps how many reviews
// one analysis will consume.
func NewClient(apiKey, baseURL string, maxReviews int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		maxReviews: maxReviews,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(requestsPerSecond, requestsPerSecond),
		policy:     defaultRetryPolicy,
	}
}

// --- wire types ---

type movieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
}

type searchResponse struct {
	Results      []movieResult `json:"results"`
	TotalResults int           `json:"total_results"`
}

type reviewResult struct {
	Author        string `json:"author"`
	Content       string `json:"content"`
	AuthorDetails struct {
		Rating *float64 `json:"rating"`
	} `json:"author_details"`
}

type reviewsResponse struct {
	Results []reviewResult `json:"results"`
}

func toMovie(r movieResult) domain.Movie {
	return domain.Movie{
		ID:          r.ID,
		Title:       r.Title,
		PosterPath:  r.PosterPath,
		Rating:      r.VoteAverage,
		VoteCount:   r.VoteCount,
		ReleaseDate: r.ReleaseDate,
		Overview:    r.Overview,
	}
}

// --- catalog operations ---

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]domain.Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.getJSON(ctx, "search", "/search/movie", params, &resp); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(resp.Results))
	for _, r := range resp.Results {
		movies = append(movies, toMovie(r))
	}
	return movies, nil
}

// GetMovie fetches details for one movie. Returns domain.ErrMovieNotFound
// for unknown IDs.
func (c *Client) GetMovie(ctx context.Context, movieID int) (*domain.Movie, error) {
	var resp movieResult
	if err := c.getJSON(ctx, "movie", "/movie/"+strconv.Itoa(movieID), nil, &resp); err != nil {
		return nil, err
	}

	movie := toMovie(resp)
	return &movie, nil
}

// GetReviews fetches reviews for one movie, capped at the configured maximum.
// An empty result is valid; many movies have no reviews.
func (c *Client) GetReviews(ctx context.Context, movieID int) ([]domain.Review, error) {
	var resp reviewsResponse
	if err := c.getJSON(ctx, "reviews", "/movie/"+strconv.Itoa(movieID)+"/reviews", nil, &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if c.maxReviews > 0 && len(results) > c.maxReviews {
		results = results[:c.maxReviews]
	}

	reviews := make([]domain.Review, 0, len(results))
	for _, r := range results {
		reviews = append(reviews, domain.Review{
			Author:  r.Author,
			Content: r.Content,
			Rating:  r.AuthorDetails.Rating,
		})
	}
	return reviews, nil
}

// --- transport ---

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d: %s", e.code, e.body)
}

// classifyStatus maps TMDB failures onto retry actions: 429 backs off
// longer, 5xx retries, everything else (malformed requests, bad key,
// missing resources) is permanent.
func classifyStatus(err error) retry.Action {
	var se *statusError
	if errors.As(err, &se) {
		switch {
		case se.code == http.StatusTooManyRequests:
			return retry.After
		case se.code >= 500:
			return retry.Retry
		default:
			return retry.Stop
		}
	}
	// Network-level failures are worth retrying.
	return retry.Retry
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	start := time.Now()

	body, err := retry.Do(ctx, c.policy, classifyStatus, func() ([]byte, error) {
		return c.doRequest(ctx, path, params)
	})

	metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "error").Inc()

		var permErr *retry.PermanentError
		if errors.As(err, &permErr) {
			var se *statusError
			if errors.As(permErr.Err, &se) && se.code == http.StatusNotFound {
				return domain.ErrMovieNotFound
			}
		}
		return err
	}
	metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "success").Inc()

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb: rate limiter wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("tmdb: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: truncate(string(body), 200)}
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
