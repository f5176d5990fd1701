package domain

import (
	"context"
	"time"
)

// Job post category and type enums. Validation rejects anything outside
// these sets.
var (
	JobCategories = []string{"Engineering", "Design", "Marketing", "Sales", "Operations", "Other"}
	JobTypes      = []string{"Full-time", "Part-time", "Contract", "Remote", "Internship"}
)

type JobPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Experience   string    `json:"experience"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"isActive"`
	AdminID      string    `json:"adminId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Joined data for admin list responses
	ApplicationCount *int64 `json:"applicationCount,omitempty"`
}

// JobPostUpdate carries a partial update: nil fields keep their stored value.
type JobPostUpdate struct {
	Title        *string
	Category     *string
	Location     *string
	Type         *string
	Experience   *string
	Description  *string
	Requirements []string
	IsActive     *bool
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPost) error
	GetByID(ctx context.Context, id string) (*JobPost, error)
	FetchActive(ctx context.Context) ([]JobPost, error)
	FetchAllWithCounts(ctx context.Context) ([]JobPost, error)
	Update(ctx context.Context, job *JobPost) error
	Delete(ctx context.Context, id string) error
	CountStats(ctx context.Context) (*DashboardStats, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, adminID string, job *JobPost) error
	GetJobDetails(ctx context.Context, id string) (*JobPost, []JobApplication, error)
	ListActiveJobs(ctx context.Context) ([]JobPost, error)
	ListJobsForAdmin(ctx context.Context) ([]JobPost, error)
	UpdateJob(ctx context.Context, id string, update *JobPostUpdate) (*JobPost, error)
	DeleteJob(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*DashboardStats, error)
}
