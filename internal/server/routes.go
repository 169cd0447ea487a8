package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// API routes
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/search", s.handleSearch)
	s.echo.GET("/api/movie/:id", s.handleMovie)
	s.echo.GET("/api/analyze/:id", s.handleAnalyzeMovie)
	s.echo.POST("/api/analyze/text", s.handleAnalyzeText)

	// History route (only when persistence is configured)
	if s.history != nil {
		s.echo.GET("/api/analyses/recent", s.handleRecentAnalyses)
	}
}
