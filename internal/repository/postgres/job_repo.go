package postgres

import (
	"context"
	"errors"
	"time"

	"go-careers-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPost) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO job_posts (id, title, category, location, type, experience, description, requirements, is_active, admin_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Category, job.Location, job.Type, job.Experience,
		job.Description, pq.Array(job.Requirements), job.IsActive, job.AdminID,
		job.CreatedAt, job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	query := `SELECT id, title, category, location, type, experience, description, requirements, is_active, admin_id, created_at, updated_at
              FROM job_posts WHERE id = $1`
	var job domain.JobPost
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Category, &job.Location, &job.Type, &job.Experience,
		&job.Description, pq.Array(&job.Requirements), &job.IsActive, &job.AdminID,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchActive returns only active posts, newest first. The filter is
// hardcoded server-side so the public endpoint cannot be widened by a client.
func (r *jobRepo) FetchActive(ctx context.Context) ([]domain.JobPost, error) {
	query := `SELECT id, title, category, location, type, experience, description, requirements, is_active, admin_id, created_at, updated_at
              FROM job_posts WHERE is_active = true ORDER BY created_at DESC`
	return r.fetch(ctx, query)
}

// FetchAllWithCounts returns every post with its application count for the
// admin job list.
func (r *jobRepo) FetchAllWithCounts(ctx context.Context) ([]domain.JobPost, error) {
	query := `
		SELECT
			j.id, j.title, j.category, j.location, j.type, j.experience,
			j.description, j.requirements, j.is_active, j.admin_id,
			j.created_at, j.updated_at,
			COUNT(a.id) AS application_count
		FROM job_posts j
		LEFT JOIN job_applications a ON a.job_post_id = j.id
		GROUP BY j.id
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPost
	for rows.Next() {
		var job domain.JobPost
		var count int64
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Category, &job.Location, &job.Type, &job.Experience,
			&job.Description, pq.Array(&job.Requirements), &job.IsActive, &job.AdminID,
			&job.CreatedAt, &job.UpdatedAt, &count,
		); err != nil {
			return nil, err
		}
		job.ApplicationCount = &count
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPost) error {
	job.UpdatedAt = time.Now()

	query := `UPDATE job_posts
              SET title = $2, category = $3, location = $4, type = $5, experience = $6,
                  description = $7, requirements = $8, is_active = $9, updated_at = $10
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Category, job.Location, job.Type, job.Experience,
		job.Description, pq.Array(job.Requirements), job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the post; applications go with it via the FK cascade.
func (r *jobRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) CountStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM job_posts),
			(SELECT COUNT(*) FROM job_posts WHERE is_active = true),
			(SELECT COUNT(*) FROM job_applications),
			(SELECT COUNT(*) FROM job_applications WHERE status = 'pending')`

	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalJobs, &stats.ActiveJobs,
		&stats.TotalApplications, &stats.PendingApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.JobPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPost
	for rows.Next() {
		var job domain.JobPost
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Category, &job.Location, &job.Type, &job.Experience,
			&job.Description, pq.Array(&job.Requirements), &job.IsActive, &job.AdminID,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
