package usecase

import (
	"context"
	"errors"

	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, adminID string, job *domain.JobPost) error {
	job.AdminID = adminID
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetails returns the post along with its applications for the admin
// detail view.
func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.JobPost, []domain.JobApplication, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job post not found")
		}
		return nil, nil, apperror.Internal(err)
	}

	apps, err := u.applicationRepo.GetByJobID(ctx, id)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	return job, apps, nil
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context) ([]domain.JobPost, error) {
	jobs, err := u.jobRepo.FetchActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListJobsForAdmin(ctx context.Context) ([]domain.JobPost, error) {
	jobs, err := u.jobRepo.FetchAllWithCounts(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// UpdateJob merges the provided fields onto the stored post. Read-then-write
// is fine here: job posts have no concurrent-writer requirement.
func (u *jobUsecase) UpdateJob(ctx context.Context, id string, update *domain.JobPostUpdate) (*domain.JobPost, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job post not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Category != nil {
		job.Category = *update.Category
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.Type != nil {
		job.Type = *update.Type
	}
	if update.Experience != nil {
		job.Experience = *update.Experience
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Requirements != nil {
		job.Requirements = update.Requirements
	}
	if update.IsActive != nil {
		job.IsActive = *update.IsActive
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job post not found")
		}
		return nil, apperror.Internal(err)
	}

	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	// Existence check first so a missing post reads as 404, not success.
	if _, err := u.jobRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job post not found")
		}
		return apperror.Internal(err)
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := u.jobRepo.CountStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
