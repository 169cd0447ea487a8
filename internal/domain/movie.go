package domain

import "context"

// Movie is the catalog metadata for a single film.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	Rating      float64 `json:"rating"`
	VoteCount   int     `json:"vote_count"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
}

// Review is one raw user review as returned by the catalog.
// Rating is nil when the author did not leave a numeric score.
type Review struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Rating  *float64 `json:"rating,omitempty"`
}

// Catalog is the external movie lookup capability.
// Returning zero reviews for a movie is a valid, expected outcome.
type Catalog interface {
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
	GetMovie(ctx context.Context, movieID int) (*Movie, error)
	GetReviews(ctx context.Context, movieID int) ([]Review, error)
}
