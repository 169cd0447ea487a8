package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pscheid92/moviepulse/internal/config"
	"github.com/pscheid92/moviepulse/internal/domain"
	apperrors "github.com/pscheid92/moviepulse/internal/errors"
)

// analysisService is the slice of the analyzer the HTTP layer needs.
type analysisService interface {
	AnalyzeMovie(ctx context.Context, movieID int) (*domain.MovieAnalysis, error)
	AnalyzeText(ctx context.Context, text string) (domain.Verdict, error)
	AnalyzeBatch(ctx context.Context, texts []string) (domain.CorpusStats, error)
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	analyzer  analysisService
	catalog   domain.Catalog
	history   domain.AnalysisHistory
	startTime time.Time
}

// NewServer builds the HTTP server. history may be nil; the recent-analyses
// route is only registered when it is configured.
func NewServer(cfg *config.Config, analyzer analysisService, catalog domain.Catalog, history domain.AnalysisHistory) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		analyzer:  analyzer,
		catalog:   catalog,
		history:   history,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
