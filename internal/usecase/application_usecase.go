package usecase

import (
	"context"
	"errors"

	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Submit records a public job application against an active post.
func (uc *applicationUsecase) Submit(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	// 1. The referenced post must exist and still accept applications
	job, err := uc.jobRepo.GetByID(ctx, app.JobPostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job post not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	// 2. Fast-path duplicate check for a friendly rejection
	exists, err := uc.applicationRepo.Exists(ctx, app.Email, app.JobPostID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied for this position")
	}

	// 3. Create. The store's uniqueness constraint is the authoritative
	// guard: concurrent duplicates that slip past the pre-check land here.
	app.Status = domain.ApplicationStatusPending
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already applied for this position")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// UpdateStatus moves an application to any status; triage has no transition
// restrictions.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id, status string) (*domain.JobApplication, error) {
	app, err := uc.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
