package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-careers-backend/internal/domain"
	"go-careers-backend/internal/usecase"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPost) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobRepo) FetchActive(ctx context.Context) ([]domain.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobRepo) FetchAllWithCounts(ctx context.Context) ([]domain.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPost) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) CountStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobPostID string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobPostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, email, jobPostID string) (bool, error) {
	args := m.Called(ctx, email, jobPostID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func appErr(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appError *apperror.AppError
	require.ErrorAs(t, err, &appError)
	return appError
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenService("test-secret")

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	stored := &domain.Admin{ID: "admin-1", Email: "admin@example.com", PasswordHash: hash}

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(repo, tokens)

		_, _, err := uc.Login(ctx, "ghost@example.com", "whatever")
		e := appErr(t, err)
		assert.Equal(t, http.StatusNotFound, e.Code)
		assert.Equal(t, "No account found with the provided email address.", e.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(stored, nil)
		uc := usecase.NewAuthUsecase(repo, tokens)

		_, _, err := uc.Login(ctx, "admin@example.com", "wrong-password")
		e := appErr(t, err)
		assert.Equal(t, http.StatusBadRequest, e.Code)
		assert.Equal(t, "You entered a wrong password.", e.Message)
	})

	t.Run("success issues verifiable token", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(stored, nil)
		uc := usecase.NewAuthUsecase(repo, tokens)

		admin, token, err := uc.Login(ctx, "admin@example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", admin.ID)

		payload, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, payload.ID)
		assert.Equal(t, admin.Email, payload.Email)
	})
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	activeJob := &domain.JobPost{ID: "job-1", Title: "Backend Engineer", IsActive: true}
	application := func() *domain.JobApplication {
		return &domain.JobApplication{Name: "Jane Doe", Email: "jane@x.com", JobPostID: "job-1"}
	}

	t.Run("job not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.Submit(ctx, application())
		e := appErr(t, err)
		assert.Equal(t, http.StatusNotFound, e.Code)
		assert.Equal(t, "Job post not found", e.Message)
	})

	t.Run("inactive job rejected regardless of payload", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.JobPost{ID: "job-1", IsActive: false}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.Submit(ctx, application())
		e := appErr(t, err)
		assert.Equal(t, http.StatusBadRequest, e.Code)
		assert.Equal(t, "This job is no longer accepting applications", e.Message)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate caught by pre-check", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob, nil)
		appRepo.On("Exists", ctx, "jane@x.com", "job-1").Return(true, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.Submit(ctx, application())
		e := appErr(t, err)
		assert.Equal(t, "You have already applied for this position", e.Message)
	})

	t.Run("duplicate caught by store constraint under race", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob, nil)
		// Pre-check saw nothing, but the concurrent twin won the insert
		appRepo.On("Exists", ctx, "jane@x.com", "job-1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(domain.ErrDuplicate)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.Submit(ctx, application())
		e := appErr(t, err)
		assert.Equal(t, http.StatusBadRequest, e.Code)
		assert.Equal(t, "You have already applied for this position", e.Message)
	})

	t.Run("success starts in pending", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob, nil)
		appRepo.On("Exists", ctx, "jane@x.com", "job-1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		created, err := uc.Submit(ctx, application())
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, created.Status)
		appRepo.AssertExpectations(t)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		appRepo.On("UpdateStatus", ctx, "missing", "accepted").Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.UpdateStatus(ctx, "missing", "accepted")
		e := appErr(t, err)
		assert.Equal(t, http.StatusNotFound, e.Code)
		assert.Equal(t, "Application not found", e.Message)
	})

	t.Run("any transition allowed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		updated := &domain.JobApplication{ID: "app-1", Status: "pending"}
		appRepo.On("UpdateStatus", ctx, "app-1", "pending").Return(updated, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		// rejected -> pending is fine: triage is not a state machine
		app, err := uc.UpdateStatus(ctx, "app-1", "pending")
		require.NoError(t, err)
		assert.Equal(t, "pending", app.Status)
	})
}

func TestUpdateJobPartialMerge(t *testing.T) {
	ctx := context.Background()

	stored := &domain.JobPost{
		ID:           "job-1",
		Title:        "Backend Engineer",
		Category:     "Engineering",
		Location:     "Remote",
		Type:         "Full-time",
		Experience:   "3+ years",
		Description:  "Original description with enough characters.",
		Requirements: []string{"Go"},
		IsActive:     true,
	}

	jobRepo := new(MockJobRepo)
	appRepo := new(MockApplicationRepo)
	jobRepo.On("GetByID", ctx, "job-1").Return(stored, nil)
	jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.JobPost")).Return(nil).Run(func(args mock.Arguments) {
		merged := args.Get(1).(*domain.JobPost)
		assert.Equal(t, "Senior Backend Engineer", merged.Title)
		// Untouched fields keep their stored values
		assert.Equal(t, "Engineering", merged.Category)
		assert.False(t, merged.IsActive)
	})

	uc := usecase.NewJobUsecase(jobRepo, appRepo)

	title := "Senior Backend Engineer"
	inactive := false
	job, err := uc.UpdateJob(ctx, "job-1", &domain.JobPostUpdate{Title: &title, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	jobRepo.AssertExpectations(t)
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("missing post is 404", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobRepo, appRepo)

		err := uc.DeleteJob(ctx, "missing")
		e := appErr(t, err)
		assert.Equal(t, http.StatusNotFound, e.Code)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("existing post deleted", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.JobPost{ID: "job-1"}, nil)
		jobRepo.On("Delete", ctx, "job-1").Return(nil)
		uc := usecase.NewJobUsecase(jobRepo, appRepo)

		require.NoError(t, uc.DeleteJob(ctx, "job-1"))
		jobRepo.AssertExpectations(t)
	})
}

func TestGetJobDetailsIncludesApplications(t *testing.T) {
	ctx := context.Background()

	jobRepo := new(MockJobRepo)
	appRepo := new(MockApplicationRepo)
	jobRepo.On("GetByID", ctx, "job-1").Return(&domain.JobPost{ID: "job-1"}, nil)
	appRepo.On("GetByJobID", ctx, "job-1").Return([]domain.JobApplication{
		{ID: "app-1", JobPostID: "job-1"},
		{ID: "app-2", JobPostID: "job-1"},
	}, nil)

	uc := usecase.NewJobUsecase(jobRepo, appRepo)

	job, apps, err := uc.GetJobDetails(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Len(t, apps, 2)
}
