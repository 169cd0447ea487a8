package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/moviepulse/internal/platform/version"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Backend is running",
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
