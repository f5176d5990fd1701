package domain

import (
	"context"
	"time"
)

// Application status constants. Status transitions are unrestricted: triage is
// a flat workflow, not a state machine.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// JobApplication is submitted by an unauthenticated applicant. Only status is
// ever mutated afterwards, and only by an admin.
type JobApplication struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	ResumeURL   *string   `json:"resumeUrl,omitempty"`
	CoverLetter *string   `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	JobPostID   string    `json:"jobPostId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ApplicationRepository interface {
	// Create returns ErrDuplicate when the store's (email, job_post_id)
	// uniqueness constraint rejects the insert.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id string) (*JobApplication, error)
	GetByJobID(ctx context.Context, jobPostID string) ([]JobApplication, error)
	Exists(ctx context.Context, email, jobPostID string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) (*JobApplication, error)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, app *JobApplication) (*JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) (*JobApplication, error)
}
