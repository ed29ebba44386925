package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/database"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
	testdb "github.com/recapd/recapd/test/database"
)

// newTestServer builds a server over a per-test database schema with the
// upload and runs directories in a temp dir.
func newTestServer(t *testing.T) (*Server, *gin.Engine, *database.Client) {
	t.Helper()
	db := testdb.NewTestClient(t)
	cfg := &config.Config{
		Server:  config.ServerConfig{MaxUploadBytes: 1 << 20},
		DataDir: t.TempDir(),
	}
	cleaner := services.NewArtifactCleaner(cfg.RunsDir(), filepath.Join(cfg.DataDir, "source_materials"))
	workspaces := services.NewWorkspaceService(db.Client, cleaner)
	subjects := services.NewSubjectService(db.Client, cleaner)
	jobs := services.NewJobService(db.Client, cleaner)
	srv := NewServer(db, cfg, workspaces, subjects, jobs, nil)
	return srv, srv.Router(), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWorkspaceEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/workspaces", `{"name":"research","description":"papers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ws models.WorkspaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	assert.Equal(t, "research", ws.Name)
	assert.Equal(t, "papers", ws.Description)
	require.NotZero(t, ws.ID)

	// Duplicate name.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/workspaces", `{"name":"research"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workspaces", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.WorkspaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workspaces/"+strconv.Itoa(ws.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/workspaces/"+strconv.Itoa(ws.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workspaces/"+strconv.Itoa(ws.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubjectEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	srv, router, _ := newTestServer(t)

	ws, err := srv.workspaces.CreateWorkspace(context.Background(), models.CreateWorkspaceRequest{Name: "school"})
	require.NoError(t, err)

	body := `{"workspace_id":` + strconv.Itoa(ws.ID) + `,"name":"linear algebra","is_korean_only":true}`
	rec := doJSON(t, router, http.MethodPost, "/api/v1/subjects", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var subj models.SubjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subj))
	assert.Equal(t, ws.ID, subj.WorkspaceID)
	assert.True(t, subj.IsKoreanOnly)

	// Unknown workspace.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/subjects", `{"workspace_id":99999,"name":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate name.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/subjects", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/subjects?workspace_id="+strconv.Itoa(ws.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.SubjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/subjects/"+strconv.Itoa(subj.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestJobUploadEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	srv, router, _ := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"title": "standup recording"},
		map[string]string{
			"monday.wav":  "RIFF....",
			"tuesday.mp3": "ID3.....",
		})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var job models.SummaryJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "standup recording", job.Title)
	assert.Equal(t, "PENDING", job.Status)
	require.Len(t, job.Materials, 2)
	for _, mat := range job.Materials {
		assert.Equal(t, "UPLOADED", mat.Status)
	}

	// Uploaded files land under the job's upload directory.
	jobDir := filepath.Join(srv.uploadRoot, strconv.Itoa(job.ID))
	entries, err := os.ReadDir(jobDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/summary-jobs/"+strconv.Itoa(job.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// A pending job has no summary to download.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/summary-jobs/"+strconv.Itoa(job.ID)+"/download", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/summary-jobs/"+strconv.Itoa(job.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err = os.Stat(jobDir)
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadCompletedJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	_, router, db := newTestServer(t)

	summary := "# standup 최종 요약\n\nall good"
	job, err := db.SummaryJob.Create().
		SetTitle("standup").
		SetStatus(summaryjob.StatusCOMPLETED).
		SetFinalSummary(summary).
		Save(context.Background())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/summary-jobs/"+strconv.Itoa(job.ID)+"/download", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, summary, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
}

func TestHealthzReportsDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	require.Contains(t, body, "database")
}

func TestListJobsFilteredBySubject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	srv, router, _ := newTestServer(t)

	ws, err := srv.workspaces.CreateWorkspace(context.Background(), models.CreateWorkspaceRequest{Name: "w"})
	require.NoError(t, err)
	subj, err := srv.subjects.CreateSubject(context.Background(), models.CreateSubjectRequest{WorkspaceID: ws.ID, Name: "s"})
	require.NoError(t, err)

	_, err = srv.jobs.CreateJob(context.Background(), "with subject", &subj.ID)
	require.NoError(t, err)
	_, err = srv.jobs.CreateJob(context.Background(), "without subject", nil)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/summary-jobs?subject_id="+strconv.Itoa(subj.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.SummaryJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "with subject", list[0].Title)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/summary-jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}
