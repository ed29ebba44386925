package services

import (
	"context"
	"fmt"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/models"
)

// JobService manages summary jobs and their source materials.
type JobService struct {
	client    *ent.Client
	artifacts *ArtifactCleaner
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client, artifacts *ArtifactCleaner) *JobService {
	return &JobService{client: client, artifacts: artifacts}
}

// CreateJob creates a PENDING job. Materials are attached afterwards via
// AddMaterials, once the uploaded files have been stored under the
// directory named after the job id.
func (s *JobService) CreateJob(ctx context.Context, title string, subjectID *int) (*ent.SummaryJob, error) {
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	if subjectID != nil {
		exists, err := s.client.Subject.Query().Where(subject.IDEQ(*subjectID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check subject: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: subject %d does not exist", ErrInvalidInput, *subjectID)
		}
	}

	builder := s.client.SummaryJob.Create().
		SetTitle(title).
		SetStatus(summaryjob.StatusPENDING)
	if subjectID != nil {
		builder.SetSubjectID(*subjectID)
	}
	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// AddMaterials records the stored uploads of a job as UPLOADED source
// materials in one transaction.
func (s *JobService) AddMaterials(ctx context.Context, jobID int, inputs []models.MaterialInput) error {
	if len(inputs) == 0 {
		return NewValidationError("files", "at least one file is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, input := range inputs {
		create := tx.SourceMaterial.Create().
			SetJobID(jobID).
			SetSourceType(input.SourceType).
			SetStoragePath(input.StoragePath)
		if input.OriginalFilename != "" {
			create.SetOriginalFilename(input.OriginalFilename)
		}
		if input.FileSizeBytes > 0 {
			create.SetFileSizeBytes(input.FileSizeBytes)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create source material: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListJobs returns jobs, optionally filtered to a subject, newest first,
// with materials loaded.
func (s *JobService) ListJobs(ctx context.Context, subjectID *int) ([]*ent.SummaryJob, error) {
	query := s.client.SummaryJob.Query().WithSourceMaterials()
	if subjectID != nil {
		query = query.Where(summaryjob.SubjectIDEQ(*subjectID))
	}
	jobs, err := query.Order(ent.Desc(summaryjob.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob retrieves a job with its materials and stage logs.
func (s *JobService) GetJob(ctx context.Context, id int) (*ent.SummaryJob, error) {
	job, err := s.client.SummaryJob.Query().
		Where(summaryjob.IDEQ(id)).
		WithSourceMaterials(func(q *ent.SourceMaterialQuery) {
			q.Order(ent.Asc(sourcematerial.FieldID))
		}).
		WithStageLogs().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// GetFinalSummary returns the final summary of a completed job. Jobs in
// any other state yield ErrInvalidInput.
func (s *JobService) GetFinalSummary(ctx context.Context, id int) (string, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return "", err
	}
	if job.Status != summaryjob.StatusCOMPLETED {
		return "", fmt.Errorf("%w: job is %s, not COMPLETED", ErrInvalidInput, job.Status)
	}
	if job.FinalSummary == nil {
		return "", nil
	}
	return *job.FinalSummary, nil
}

// DeleteJob removes a job, its upload directory, and its run artifacts.
func (s *JobService) DeleteJob(ctx context.Context, id int) error {
	exists, err := s.client.SummaryJob.Query().Where(summaryjob.IDEQ(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check job: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	materials, err := s.client.SourceMaterial.Query().
		Where(sourcematerial.JobIDEQ(id)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query job materials: %w", err)
	}
	s.artifacts.CleanupMaterials(materials)
	s.artifacts.CleanupUploadDir(id)

	if err := s.client.SummaryJob.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}
