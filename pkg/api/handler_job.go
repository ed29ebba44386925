package api

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/models"
)

// allowedAudioExtensions are the upload formats the pipeline can decode.
var allowedAudioExtensions = map[string]bool{
	".mp3":  true,
	".aac":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".webm": true,
}

// createJobHandler handles POST /api/v1/summary-jobs. The request is
// multipart: a title field, an optional subject_id field, and one or more
// audio files. Files are validated up front, the job row is created to
// obtain the upload directory name, and the stored files are then recorded
// as source materials. The job is left PENDING for the worker pool.
func (s *Server) createJobHandler(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	var subjectID *int
	if raw := c.PostForm("subject_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject_id"})
			return
		}
		subjectID = &id
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedAudioExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("unsupported file type %q for %s", ext, fh.Filename),
			})
			return
		}
		if fh.Size > s.config.Server.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("%s exceeds the upload size limit", fh.Filename),
			})
			return
		}
	}

	ctx := c.Request.Context()
	job, err := s.jobs.CreateJob(ctx, title, subjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	inputs, err := s.storeUploads(c, job.ID, files)
	if err == nil {
		err = s.jobs.AddMaterials(ctx, job.ID, inputs)
	}
	if err != nil {
		// Roll back the half-created job together with any stored files.
		if delErr := s.jobs.DeleteJob(ctx, job.ID); delErr != nil {
			respondServiceError(c, delErr)
			return
		}
		respondServiceError(c, err)
		return
	}

	created, err := s.jobs.GetJob(ctx, job.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewSummaryJobResponse(created))
}

// storeUploads writes the uploaded files under the job's upload directory
// and returns the material inputs describing them. Colliding filenames
// within one upload are disambiguated with an index prefix.
func (s *Server) storeUploads(c *gin.Context, jobID int, files []*multipart.FileHeader) ([]models.MaterialInput, error) {
	dir := filepath.Join(s.uploadRoot, strconv.Itoa(jobID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	seen := make(map[string]bool, len(files))
	inputs := make([]models.MaterialInput, 0, len(files))
	for i, fh := range files {
		name := filepath.Base(fh.Filename)
		if seen[name] {
			name = fmt.Sprintf("%d_%s", i, name)
		}
		seen[name] = true

		dst := filepath.Join(dir, name)
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", fh.Filename, err)
		}

		inputs = append(inputs, models.MaterialInput{
			SourceType:       sourceTypeFor(fh.Filename),
			OriginalFilename: fh.Filename,
			StoragePath:      dst,
			FileSizeBytes:    fh.Size,
		})
	}
	return inputs, nil
}

// sourceTypeFor derives a MIME type from the upload's extension.
func sourceTypeFor(filename string) string {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); mt != "" {
		return mt
	}
	return "application/octet-stream"
}

// listJobsHandler handles GET /api/v1/summary-jobs?subject_id=.
func (s *Server) listJobsHandler(c *gin.Context) {
	subjectID, ok := optionalIntQuery(c, "subject_id")
	if !ok {
		return
	}

	jobs, err := s.jobs.ListJobs(c.Request.Context(), subjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]models.SummaryJobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, models.NewSummaryJobResponse(job))
	}
	c.JSON(http.StatusOK, resp)
}

// getJobHandler handles GET /api/v1/summary-jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	job, err := s.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSummaryJobResponse(job))
}

// downloadSummaryHandler handles GET /api/v1/summary-jobs/:id/download,
// serving the final summary of a completed job as a markdown attachment.
func (s *Server) downloadSummaryHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	summary, err := s.jobs.GetFinalSummary(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("summary-%d.md", id)))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(summary))
}

// deleteJobHandler handles DELETE /api/v1/summary-jobs/:id.
func (s *Server) deleteJobHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := s.jobs.DeleteJob(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
