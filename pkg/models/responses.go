package models

import (
	"time"

	"github.com/recapd/recapd/ent"
)

// WorkspaceResponse is the API shape of a workspace.
type WorkspaceResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkspaceResponse converts an ent workspace.
func NewWorkspaceResponse(ws *ent.Workspace) WorkspaceResponse {
	resp := WorkspaceResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedAt: ws.CreatedAt,
	}
	if ws.Description != nil {
		resp.Description = *ws.Description
	}
	return resp
}

// SubjectResponse is the API shape of a subject.
type SubjectResponse struct {
	ID           int       `json:"id"`
	WorkspaceID  int       `json:"workspace_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsKoreanOnly bool      `json:"is_korean_only"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSubjectResponse converts an ent subject.
func NewSubjectResponse(subj *ent.Subject) SubjectResponse {
	resp := SubjectResponse{
		ID:           subj.ID,
		WorkspaceID:  subj.WorkspaceID,
		Name:         subj.Name,
		IsKoreanOnly: subj.IsKoreanOnly,
		CreatedAt:    subj.CreatedAt,
	}
	if subj.Description != nil {
		resp.Description = *subj.Description
	}
	return resp
}

// SummaryJobResponse is the API shape of a summary job. Materials and
// stage logs appear when the query loaded those edges.
type SummaryJobResponse struct {
	ID           int                      `json:"id"`
	SubjectID    *int                     `json:"subject_id,omitempty"`
	Title        string                   `json:"title"`
	Status       string                   `json:"status"`
	FinalSummary string                   `json:"final_summary,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	StartedAt    *time.Time               `json:"started_at,omitempty"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
	Materials    []SourceMaterialResponse `json:"materials,omitempty"`
	StageLogs    []StageLogResponse       `json:"stage_logs,omitempty"`
}

// NewSummaryJobResponse converts an ent summary job with any loaded edges.
func NewSummaryJobResponse(job *ent.SummaryJob) SummaryJobResponse {
	resp := SummaryJobResponse{
		ID:          job.ID,
		SubjectID:   job.SubjectID,
		Title:       job.Title,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt,
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
	}
	if job.FinalSummary != nil {
		resp.FinalSummary = *job.FinalSummary
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	for _, mat := range job.Edges.SourceMaterials {
		resp.Materials = append(resp.Materials, NewSourceMaterialResponse(mat))
	}
	for _, entry := range job.Edges.StageLogs {
		resp.StageLogs = append(resp.StageLogs, NewStageLogResponse(entry))
	}
	return resp
}

// SourceMaterialResponse is the API shape of a source material.
type SourceMaterialResponse struct {
	ID                int            `json:"id"`
	SourceType        string         `json:"source_type"`
	OriginalFilename  string         `json:"original_filename,omitempty"`
	FileSizeBytes     int64          `json:"file_size_bytes,omitempty"`
	Status            string         `json:"status"`
	IndividualSummary string         `json:"individual_summary,omitempty"`
	OutputArtifacts   map[string]any `json:"output_artifacts,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// NewSourceMaterialResponse converts an ent source material.
func NewSourceMaterialResponse(mat *ent.SourceMaterial) SourceMaterialResponse {
	resp := SourceMaterialResponse{
		ID:              mat.ID,
		SourceType:      mat.SourceType,
		Status:          string(mat.Status),
		OutputArtifacts: mat.OutputArtifacts,
		CreatedAt:       mat.CreatedAt,
	}
	if mat.OriginalFilename != nil {
		resp.OriginalFilename = *mat.OriginalFilename
	}
	if mat.FileSizeBytes != nil {
		resp.FileSizeBytes = *mat.FileSizeBytes
	}
	if mat.IndividualSummary != nil {
		resp.IndividualSummary = *mat.IndividualSummary
	}
	return resp
}

// StageLogResponse is the API shape of a coordinator stage log entry.
type StageLogResponse struct {
	ID        int        `json:"id"`
	StageName string     `json:"stage_name"`
	Status    string     `json:"status"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// NewStageLogResponse converts an ent stage log entry.
func NewStageLogResponse(entry *ent.JobStageLog) StageLogResponse {
	return StageLogResponse{
		ID:        entry.ID,
		StageName: entry.StageName,
		Status:    string(entry.Status),
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
	}
}
