package services

import (
	"context"
	"fmt"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/ent/workspace"
	"github.com/recapd/recapd/pkg/models"
)

// SubjectService manages subjects within a workspace.
type SubjectService struct {
	client    *ent.Client
	artifacts *ArtifactCleaner
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(client *ent.Client, artifacts *ArtifactCleaner) *SubjectService {
	return &SubjectService{client: client, artifacts: artifacts}
}

// CreateSubject creates a subject under a workspace. An unknown workspace
// yields ErrInvalidInput; a duplicate name yields ErrAlreadyExists.
func (s *SubjectService) CreateSubject(ctx context.Context, req models.CreateSubjectRequest) (*ent.Subject, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.WorkspaceID <= 0 {
		return nil, NewValidationError("workspace_id", "required")
	}

	exists, err := s.client.Workspace.Query().Where(workspace.IDEQ(req.WorkspaceID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: workspace %d does not exist", ErrInvalidInput, req.WorkspaceID)
	}

	builder := s.client.Subject.Create().
		SetWorkspaceID(req.WorkspaceID).
		SetName(req.Name).
		SetIsKoreanOnly(req.IsKoreanOnly)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	subj, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return subj, nil
}

// ListSubjects returns subjects, optionally filtered to a workspace,
// newest first.
func (s *SubjectService) ListSubjects(ctx context.Context, workspaceID *int) ([]*ent.Subject, error) {
	query := s.client.Subject.Query()
	if workspaceID != nil {
		query = query.Where(subject.WorkspaceIDEQ(*workspaceID))
	}
	subjects, err := query.Order(ent.Desc(subject.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

// GetSubject retrieves a subject by id.
func (s *SubjectService) GetSubject(ctx context.Context, id int) (*ent.Subject, error) {
	subj, err := s.client.Subject.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return subj, nil
}

// DeleteSubject removes a subject and its jobs, cleaning artifact files
// before the DB cascade.
func (s *SubjectService) DeleteSubject(ctx context.Context, id int) error {
	exists, err := s.client.Subject.Query().Where(subject.IDEQ(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check subject: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	materials, err := s.client.SourceMaterial.Query().
		Where(sourcematerial.HasJobWith(summaryjob.SubjectIDEQ(id))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query subject materials: %w", err)
	}
	s.artifacts.CleanupMaterials(materials)

	jobIDs, err := s.client.SummaryJob.Query().
		Where(summaryjob.SubjectIDEQ(id)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query subject jobs: %w", err)
	}
	for _, jobID := range jobIDs {
		s.artifacts.CleanupUploadDir(jobID)
	}

	if err := s.client.Subject.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}
