// Package models defines the API request and response shapes.
package models

// CreateWorkspaceRequest is the body of POST /api/v1/workspaces.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateSubjectRequest is the body of POST /api/v1/subjects.
type CreateSubjectRequest struct {
	WorkspaceID  int    `json:"workspace_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	IsKoreanOnly bool   `json:"is_korean_only"`
}

// MaterialInput describes one stored upload.
type MaterialInput struct {
	SourceType       string
	OriginalFilename string
	StoragePath      string
	FileSizeBytes    int64
}
