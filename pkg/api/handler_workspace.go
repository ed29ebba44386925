package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/models"
)

// createWorkspaceHandler handles POST /api/v1/workspaces.
func (s *Server) createWorkspaceHandler(c *gin.Context) {
	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := s.workspaces.CreateWorkspace(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewWorkspaceResponse(ws))
}

// listWorkspacesHandler handles GET /api/v1/workspaces.
func (s *Server) listWorkspacesHandler(c *gin.Context) {
	workspaces, err := s.workspaces.ListWorkspaces(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]models.WorkspaceResponse, 0, len(workspaces))
	for _, ws := range workspaces {
		resp = append(resp, models.NewWorkspaceResponse(ws))
	}
	c.JSON(http.StatusOK, resp)
}

// getWorkspaceHandler handles GET /api/v1/workspaces/:id.
func (s *Server) getWorkspaceHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ws, err := s.workspaces.GetWorkspace(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewWorkspaceResponse(ws))
}

// deleteWorkspaceHandler handles DELETE /api/v1/workspaces/:id.
func (s *Server) deleteWorkspaceHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := s.workspaces.DeleteWorkspace(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
