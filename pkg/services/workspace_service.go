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

// WorkspaceService manages workspaces, the top level of the project
// hierarchy.
type WorkspaceService struct {
	client   *ent.Client
	artifacts *ArtifactCleaner
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client, artifacts *ArtifactCleaner) *WorkspaceService {
	return &WorkspaceService{client: client, artifacts: artifacts}
}

// CreateWorkspace creates a workspace. Duplicate names yield
// ErrAlreadyExists.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, req models.CreateWorkspaceRequest) (*ent.Workspace, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Workspace.Create().SetName(req.Name)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	ws, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// ListWorkspaces returns all workspaces, newest first.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context) ([]*ent.Workspace, error) {
	workspaces, err := s.client.Workspace.Query().
		Order(ent.Desc(workspace.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// GetWorkspace retrieves a workspace by id.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id int) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

// DeleteWorkspace removes a workspace and everything under it. Artifact
// files of the contained jobs are cleaned up first; the DB cascade then
// removes subjects, jobs, materials, segments, and stage logs.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id int) error {
	exists, err := s.client.Workspace.Query().Where(workspace.IDEQ(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check workspace: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	materials, err := s.client.SourceMaterial.Query().
		Where(sourcematerial.HasJobWith(
			summaryjob.HasSubjectWith(subject.HasWorkspaceWith(workspace.IDEQ(id))),
		)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query workspace materials: %w", err)
	}
	s.artifacts.CleanupMaterials(materials)

	jobIDs, err := s.client.SummaryJob.Query().
		Where(summaryjob.HasSubjectWith(subject.HasWorkspaceWith(workspace.IDEQ(id)))).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query workspace jobs: %w", err)
	}
	for _, jobID := range jobIDs {
		s.artifacts.CleanupUploadDir(jobID)
	}

	if err := s.client.Workspace.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}
