package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/moviepulse/internal/domain"
	apperrors "github.com/pscheid92/moviepulse/internal/errors"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type analyzeResponse struct {
	Success               bool               `json:"success"`
	Movie                 domain.Movie       `json:"movie"`
	SentimentSummary      domain.CorpusStats `json:"sentiment_summary"`
	ExamplePositiveReview any                `json:"example_positive_review"`
	ExampleNegativeReview any                `json:"example_negative_review"`
}

// noDataMovie carries the reduced movie payload of the no-reviews response.
type noDataMovie struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	PosterPath string  `json:"poster_path"`
	Rating     float64 `json:"rating"`
	VoteCount  int     `json:"vote_count"`
}

type noDataResponse struct {
	Success    bool        `json:"success"`
	Movie      noDataMovie `json:"movie"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
}

// missingExemplar is the placeholder when one sentiment partition is empty.
type missingExemplar struct {
	Message string  `json:"message"`
	Content *string `json:"content"`
}

func (s *Server) handleAnalyzeMovie(c echo.Context) error {
	movieID, err := parseMovieID(c)
	if err != nil {
		return err
	}

	analysis, err := s.analyzer.AnalyzeMovie(c.Request().Context(), movieID)
	if err != nil {
		return err
	}

	if !analysis.HasReviews() {
		return c.JSON(http.StatusOK, noDataResponse{
			Success: false,
			Movie: noDataMovie{
				ID:         analysis.Movie.ID,
				Title:      analysis.Movie.Title,
				PosterPath: analysis.Movie.PosterPath,
				Rating:     analysis.Movie.Rating,
				VoteCount:  analysis.Movie.VoteCount,
			},
			Message:    "No reviews available for this movie on TMDB.",
			Suggestion: `Try popular movies like "The Shawshank Redemption" (id: 278), "Inception" (id: 27205), or "The Dark Knight" (id: 155)`,
		})
	}

	return c.JSON(http.StatusOK, analyzeResponse{
		Success:               true,
		Movie:                 analysis.Movie,
		SentimentSummary:      analysis.Stats,
		ExamplePositiveReview: exemplarPayload(analysis.BestPositive, "No positive reviews found"),
		ExampleNegativeReview: exemplarPayload(analysis.BestNegative, "No negative reviews found"),
	})
}

func exemplarPayload(exemplar *domain.Exemplar, absentMessage string) any {
	if exemplar == nil {
		return missingExemplar{Message: absentMessage}
	}
	return exemplar
}

type analyzeTextRequest struct {
	Text json.RawMessage `json:"text"`
}

func (s *Server) handleAnalyzeText(c echo.Context) error {
	var req analyzeTextRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return apperrors.ValidationError("request body must be valid JSON")
	}
	// A missing field and a JSON null both count as no text. The null check
	// matters: unmarshalling null into a string is a no-op, so without it a
	// null would slip through as an empty single-text classification.
	if len(req.Text) == 0 || bytes.Equal(bytes.TrimSpace(req.Text), []byte("null")) {
		return apperrors.ValidationError("text field required")
	}

	// A string gets a single verdict; an array of strings gets the batch
	// summary. Anything else is rejected, never coerced.
	var single string
	if err := json.Unmarshal(req.Text, &single); err == nil {
		verdict, err := s.analyzer.AnalyzeText(c.Request().Context(), single)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, verdict)
	}

	var batch []string
	if err := json.Unmarshal(req.Text, &batch); err == nil {
		stats, err := s.analyzer.AnalyzeBatch(c.Request().Context(), batch)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, stats)
	}

	return apperrors.ValidationError("text must be a string or an array of strings")
}

type recentAnalysesResponse struct {
	Analyses []domain.AnalysisRecord `json:"analyses"`
	Count    int                     `json:"count"`
}

func (s *Server) handleRecentAnalyses(c echo.Context) error {
	limit := defaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return apperrors.ValidationError("limit must be a positive integer").WithField("limit", raw)
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := s.history.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return apperrors.InternalError("failed to list recent analyses", err)
	}

	return c.JSON(http.StatusOK, recentAnalysesResponse{Analyses: records, Count: len(records)})
}
