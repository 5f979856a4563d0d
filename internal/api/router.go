// Package api serves the planner and the rigging engine over HTTP so a
// review tool can re-plan scenes and audition riggings without the CLI.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/store"
)

// ProjectStore is the part of the repository the API needs
type ProjectStore interface {
	SaveProject(ctx context.Context, p *model.DirectorProject) error
	GetProject(ctx context.Context, id uuid.UUID) (*model.DirectorProject, error)
	ListProjects(ctx context.Context) ([]store.ProjectSummary, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	RiggingsForCharacter(ctx context.Context, name string) ([]store.StoredRigging, error)
}

type Server struct {
	Director *director.Director
	// Store is optional; without it projects are planned but not kept.
	Store ProjectStore
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.health)

	v1 := r.Group("/v1")
	{
		v1.POST("/scenes/plan", s.planScene)
		v1.POST("/dialogue/rig", s.rigDialogue)

		v1.POST("/projects", s.createProject)
		v1.GET("/projects", s.listProjects)
		v1.GET("/projects/:id", s.getProject)
		v1.GET("/projects/:id/timeline", s.getTimeline)
		v1.DELETE("/projects/:id", s.deleteProject)

		v1.GET("/characters/:name/riggings", s.characterRiggings)
	}
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

// fail writes err with the status its kind maps to.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errNoStore):
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Review API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
