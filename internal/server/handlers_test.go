package server

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pscheid92/moviepulse/internal/config"
	"github.com/pscheid92/moviepulse/internal/domain"
)

// mockAnalyzer implements analysisService with overridable functions.
type mockAnalyzer struct {
	analyzeMovieFunc func(ctx context.Context, movieID int) (*domain.MovieAnalysis, error)
	analyzeTextFunc  func(ctx context.Context, text string) (domain.Verdict, error)
	analyzeBatchFunc func(ctx context.Context, texts []string) (domain.CorpusStats, error)
}

func (m *mockAnalyzer) AnalyzeMovie(ctx context.Context, movieID int) (*domain.MovieAnalysis, error) {
	return m.analyzeMovieFunc(ctx, movieID)
}

func (m *mockAnalyzer) AnalyzeText(ctx context.Context, text string) (domain.Verdict, error) {
	return m.analyzeTextFunc(ctx, text)
}

func (m *mockAnalyzer) AnalyzeBatch(ctx context.Context, texts []string) (domain.CorpusStats, error) {
	return m.analyzeBatchFunc(ctx, texts)
}

// mockCatalog implements domain.Catalog with overridable functions.
type mockCatalog struct {
	searchMoviesFunc func(ctx context.Context, query string) ([]domain.Movie, error)
	getMovieFunc     func(ctx context.Context, movieID int) (*domain.Movie, error)
	getReviewsFunc   func(ctx context.Context, movieID int) ([]domain.Review, error)
}

func (m *mockCatalog) SearchMovies(ctx context.Context, query string) ([]domain.Movie, error) {
	return m.searchMoviesFunc(ctx, query)
}

func (m *mockCatalog) GetMovie(ctx context.Context, movieID int) (*domain.Movie, error) {
	return m.getMovieFunc(ctx, movieID)
}

func (m *mockCatalog) GetReviews(ctx context.Context, movieID int) ([]domain.Review, error) {
	return m.getReviewsFunc(ctx, movieID)
}

// mockHistory implements domain.AnalysisHistory with overridable functions.
type mockHistory struct {
	recordFunc     func(ctx context.Context, analysis *domain.MovieAnalysis) error
	listRecentFunc func(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)
}

func (m *mockHistory) Record(ctx context.Context, analysis *domain.MovieAnalysis) error {
	return m.recordFunc(ctx, analysis)
}

func (m *mockHistory) ListRecent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	return m.listRecentFunc(ctx, limit)
}

func newTestServer(t *testing.T, analyzer analysisService, catalog domain.Catalog, history domain.AnalysisHistory) *Server {
	t.Helper()
	cfg := &config.Config{Port: "8080"}
	return NewServer(cfg, analyzer, catalog, history)
}

// perform runs one request through the full router so the error middleware
// is part of the test.
func perform(srv *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
