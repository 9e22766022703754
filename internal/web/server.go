// Package web serves the calendar as a mobile web UI.
//
// Routes mirror the screens of the app: the year grid at "/", a day screen
// opened by POST to "/day/:year/:month/:day", the add-event form and the event
// detail sheet. Each visit to a day opens a new screen with a fresh event
// store, so changes made on one visit are not visible on the next.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pfrederiksen/calendario/internal/config"
	"github.com/pfrederiksen/calendario/internal/event"
	"github.com/pfrederiksen/calendario/internal/logger"
	"github.com/pfrederiksen/calendario/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server renders the calendar pages.
type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	grid    *view.Grid
	screens *screenRegistry
	seed    []event.Seed
}

// NewServer builds the grid once and registers all routes.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()

	grid, err := view.BuildGrid(cfg.FirstYear, cfg.LastYear, cfg.DisplayLocale())
	if err != nil {
		return nil, errors.Wrap(err, "building grid")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	s := &Server{
		cfg:     cfg,
		engine:  gin.New(),
		grid:    grid,
		screens: newScreenRegistry(cfg.MaxScreens),
		seed:    cfg.SeedEvents,
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.HandleMethodNotAllowed = true
	s.engine.SetHTMLTemplate(tmpl)
	s.registerRoutes()
	return s, nil
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Listen until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.Fields{"listen": "http://" + s.cfg.Listen})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/", s.handleGrid)
	// Opening a day creates a screen, so it must not be reachable by GET.
	s.engine.POST("/day/:year/:month/:day", s.handleOpenDay)

	screens := s.engine.Group("/screens/:screen")
	screens.GET("", s.handleDay)
	screens.GET("/new", s.handleNewEventForm)
	screens.POST("/events", s.handleCreateEvent)
	screens.GET("/events/:event", s.handleEventDetail)
	screens.POST("/events/:event/delete", s.handleDeleteEvent)
	screens.GET("/export.ics", s.handleExport)

	api := s.engine.Group("/api")
	api.GET("/screens/:screen", s.handleScreenJSON)
	api.GET("/metrics", s.handleMetrics)
}

// requestLogger records request timings in the shared metrics.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		logger.RecordTiming("http.request", elapsed)
		logger.Debug("HTTP request", logger.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": elapsed.String(),
		})
	}
}
