package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/moviepulse/internal/domain"
	apperrors "github.com/pscheid92/moviepulse/internal/errors"
)

const maxSearchResults = 10

type searchResponse struct {
	Results []domain.Movie `json:"results"`
	Total   int            `json:"total"`
}

func (s *Server) handleSearch(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return apperrors.ValidationError("query parameter required")
	}

	movies, err := s.catalog.SearchMovies(c.Request().Context(), query)
	if err != nil {
		return apperrors.ExternalError("movie search failed", err).WithField("query", query)
	}

	total := len(movies)
	if len(movies) > maxSearchResults {
		movies = movies[:maxSearchResults]
	}

	return c.JSON(http.StatusOK, searchResponse{Results: movies, Total: total})
}

func (s *Server) handleMovie(c echo.Context) error {
	movieID, err := parseMovieID(c)
	if err != nil {
		return err
	}

	movie, err := s.catalog.GetMovie(c.Request().Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return apperrors.NotFoundError("movie not found").WithField("movie_id", movieID)
		}
		return apperrors.ExternalError("failed to fetch movie details", err).WithField("movie_id", movieID)
	}

	return c.JSON(http.StatusOK, movie)
}

func parseMovieID(c echo.Context) (int, error) {
	raw := c.Param("id")
	movieID, err := strconv.Atoi(raw)
	if err != nil || movieID < 1 {
		return 0, apperrors.ValidationError("movie id must be a positive integer").WithField("id", raw)
	}
	return movieID, nil
}
