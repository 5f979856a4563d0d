package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/model"
)

var errNoStore = errors.New("no project store configured")

type planSceneRequest struct {
	Scene      *model.ScreenplayScene `json:"scene" binding:"required"`
	Screenplay *model.Screenplay      `json:"screenplay,omitempty"`
}

type rigDialogueRequest struct {
	Dialogue  *model.DialogueBlock      `json:"dialogue" binding:"required"`
	Backstory *model.CharacterBackstory `json:"backstory,omitempty"`
	Scene     *model.ScreenplayScene    `json:"scene,omitempty"`
}

type projectRequest struct {
	Screenplay *model.Screenplay `json:"screenplay" binding:"required"`
}

type projectResponse struct {
	Project  *model.DirectorProject `json:"project"`
	Timeline []model.TimelineEntry  `json:"timeline"`
	Saved    bool                   `json:"saved"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": s.Store != nil})
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return false
	}
	return true
}

func (s *Server) planScene(c *gin.Context) {
	var req planSceneRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := model.ValidateScene(req.Scene); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Director.PlanScene(*req.Scene, req.Screenplay))
}

// rigDialogue rigs one line. Without a backstory in the body the director's
// catalog is asked for one.
func (s *Server) rigDialogue(c *gin.Context) {
	var req rigDialogueRequest
	if !bindJSON(c, &req) {
		return
	}

	b := req.Backstory
	if b == nil && s.Director.Backstory != nil {
		b, _ = s.Director.Backstory.Lookup(req.Dialogue.Character, nil)
	}

	rigging, err := s.Director.Rigging.RigInScene(*req.Dialogue, b, req.Scene)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rigging)
}

func (s *Server) createProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := s.Director.DirectProject(c.Request.Context(), req.Screenplay)
	if err != nil {
		fail(c, err)
		return
	}

	resp := projectResponse{Project: project, Timeline: director.BuildTimeline(project)}
	if s.Store != nil {
		if err := s.Store.SaveProject(c.Request.Context(), project); err != nil {
			fail(c, err)
			return
		}
		resp.Saved = true
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) listProjects(c *gin.Context) {
	if s.Store == nil {
		fail(c, errNoStore)
		return
	}
	list, err := s.Store.ListProjects(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": list})
}

// loadProject resolves the :id parameter to a stored project.
func (s *Server) loadProject(c *gin.Context) (*model.DirectorProject, bool) {
	if s.Store == nil {
		fail(c, errNoStore)
		return nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, fmt.Errorf("%w: project id %q", model.ErrInvalidInput, c.Param("id")))
		return nil, false
	}
	project, err := s.Store.GetProject(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return project, true
}

func (s *Server) getProject(c *gin.Context) {
	if project, ok := s.loadProject(c); ok {
		c.JSON(http.StatusOK, project)
	}
}

func (s *Server) getTimeline(c *gin.Context) {
	if project, ok := s.loadProject(c); ok {
		c.JSON(http.StatusOK, gin.H{
			"timeline":      director.BuildTimeline(project),
			"totalDuration": project.TotalDuration,
		})
	}
}

func (s *Server) deleteProject(c *gin.Context) {
	if s.Store == nil {
		fail(c, errNoStore)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, fmt.Errorf("%w: project id %q", model.ErrInvalidInput, c.Param("id")))
		return
	}
	if err := s.Store.DeleteProject(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) characterRiggings(c *gin.Context) {
	if s.Store == nil {
		fail(c, errNoStore)
		return
	}
	riggings, err := s.Store.RiggingsForCharacter(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"riggings": riggings})
}
