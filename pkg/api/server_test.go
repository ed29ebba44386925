package api

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newValidationRouter builds a router whose handlers only reach the
// validation layer; the services behind it are nil and must never be hit.
func newValidationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{MaxUploadBytes: 1 << 20},
		DataDir: t.TempDir(),
	}
	srv := NewServer(nil, cfg, nil, nil, nil, nil)
	return srv.Router()
}

// multipartBody builds a multipart form with the given fields and files
// (filename → content).
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, val := range fields {
		require.NoError(t, writer.WriteField(key, val))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestCreateJobRequiresTitle(t *testing.T) {
	router := newValidationRouter(t)

	body, contentType := multipartBody(t, nil, map[string]string{"a.wav": "data"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

func TestCreateJobRequiresFiles(t *testing.T) {
	router := newValidationRouter(t)

	body, contentType := multipartBody(t, map[string]string{"title": "empty"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one file is required")
}

func TestCreateJobRejectsUnsupportedExtension(t *testing.T) {
	router := newValidationRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"title": "notes"},
		map[string]string{"notes.txt": "not audio"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestCreateJobRejectsOversizedFile(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{MaxUploadBytes: 8},
		DataDir: t.TempDir(),
	}
	srv := NewServer(nil, cfg, nil, nil, nil, nil)
	router := srv.Router()

	body, contentType := multipartBody(t,
		map[string]string{"title": "big"},
		map[string]string{"big.wav": "way more than eight bytes"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds the upload size limit")
}

func TestCreateJobRejectsMalformedSubjectID(t *testing.T) {
	router := newValidationRouter(t)

	body, contentType := multipartBody(t,
		map[string]string{"title": "x", "subject_id": "abc"},
		map[string]string{"a.wav": "data"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid subject_id")
}

func TestIDParamRejectsNonNumeric(t *testing.T) {
	router := newValidationRouter(t)

	for _, path := range []string{
		"/api/v1/workspaces/abc",
		"/api/v1/subjects/abc",
		"/api/v1/summary-jobs/abc",
		"/api/v1/summary-jobs/0/download",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestOptionalIntQueryRejectsGarbage(t *testing.T) {
	router := newValidationRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subjects?workspace_id=oops", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid workspace_id")
}

func TestCreateWorkspaceRejectsMalformedJSON(t *testing.T) {
	router := newValidationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", services.NewValidationError("name", "required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: subject 9 does not exist", services.ErrInvalidInput), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
