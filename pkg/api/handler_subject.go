package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/models"
)

// createSubjectHandler handles POST /api/v1/subjects.
func (s *Server) createSubjectHandler(c *gin.Context) {
	var req models.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subj, err := s.subjects.CreateSubject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewSubjectResponse(subj))
}

// listSubjectsHandler handles GET /api/v1/subjects?workspace_id=.
func (s *Server) listSubjectsHandler(c *gin.Context) {
	workspaceID, ok := optionalIntQuery(c, "workspace_id")
	if !ok {
		return
	}

	subjects, err := s.subjects.ListSubjects(c.Request.Context(), workspaceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]models.SubjectResponse, 0, len(subjects))
	for _, subj := range subjects {
		resp = append(resp, models.NewSubjectResponse(subj))
	}
	c.JSON(http.StatusOK, resp)
}

// getSubjectHandler handles GET /api/v1/subjects/:id.
func (s *Server) getSubjectHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	subj, err := s.subjects.GetSubject(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSubjectResponse(subj))
}

// deleteSubjectHandler handles DELETE /api/v1/subjects/:id.
func (s *Server) deleteSubjectHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := s.subjects.DeleteSubject(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
