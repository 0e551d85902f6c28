package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health", s.handleLiveness)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// User CRUD (trailing-slash collection paths, id lookup)
	s.echo.GET("/users", s.handleListUsers)
	s.echo.GET("/users/", s.handleListUsers)
	s.echo.POST("/users", s.handleCreateUser)
	s.echo.POST("/users/", s.handleCreateUser)
	s.echo.GET("/users/:id", s.handleGetUser)
}
