// Package api exposes the HTTP surface: workspace and subject management,
// summary-job submission and retrieval, and health.
package api

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/database"
	"github.com/recapd/recapd/pkg/queue"
	"github.com/recapd/recapd/pkg/services"
)

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	db         *database.Client
	config     *config.Config
	workspaces *services.WorkspaceService
	subjects   *services.SubjectService
	jobs       *services.JobService
	pool       *queue.WorkerPool

	// uploadRoot is where uploaded source materials land, one directory
	// per job id. Absolute so stored paths survive a working-directory
	// change.
	uploadRoot string
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	cfg *config.Config,
	workspaces *services.WorkspaceService,
	subjects *services.SubjectService,
	jobs *services.JobService,
	pool *queue.WorkerPool,
) *Server {
	uploadRoot := filepath.Join(cfg.DataDir, "source_materials")
	if abs, err := filepath.Abs(uploadRoot); err == nil {
		uploadRoot = abs
	}
	return &Server{
		db:         db,
		config:     cfg,
		workspaces: workspaces,
		subjects:   subjects,
		jobs:       jobs,
		pool:       pool,
		uploadRoot: uploadRoot,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger())
	s.RegisterRoutes(engine)
	return engine
}

// RegisterRoutes attaches all handlers to the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", s.healthHandler)

	v1 := engine.Group("/api/v1")
	v1.POST("/workspaces", s.createWorkspaceHandler)
	v1.GET("/workspaces", s.listWorkspacesHandler)
	v1.GET("/workspaces/:id", s.getWorkspaceHandler)
	v1.DELETE("/workspaces/:id", s.deleteWorkspaceHandler)

	v1.POST("/subjects", s.createSubjectHandler)
	v1.GET("/subjects", s.listSubjectsHandler)
	v1.GET("/subjects/:id", s.getSubjectHandler)
	v1.DELETE("/subjects/:id", s.deleteSubjectHandler)

	v1.POST("/summary-jobs", s.createJobHandler)
	v1.GET("/summary-jobs", s.listJobsHandler)
	v1.GET("/summary-jobs/:id", s.getJobHandler)
	v1.GET("/summary-jobs/:id/download", s.downloadSummaryHandler)
	v1.DELETE("/summary-jobs/:id", s.deleteJobHandler)
}

// idParam parses the :id path parameter, writing a 400 response itself
// when the value is not a positive integer.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// optionalIntQuery parses an optional integer query parameter, writing a
// 400 response itself on a malformed value.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &val, true
}
