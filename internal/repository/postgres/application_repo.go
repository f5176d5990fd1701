package postgres

import (
	"context"
	"errors"
	"time"

	"go-careers-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The (email, job_post_id) uniqueness
// constraint is the authoritative duplicate guard; a violation surfaces as
// domain.ErrDuplicate even when two submissions race past the pre-check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	app.CreatedAt = time.Now()

	query := `INSERT INTO job_applications (id, name, email, phone, resume_url, cover_letter, status, job_post_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.Name, app.Email, app.Phone, app.ResumeURL, app.CoverLetter,
		app.Status, app.JobPostID, app.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	query := `SELECT id, name, email, phone, resume_url, cover_letter, status, job_post_id, created_at
              FROM job_applications WHERE id = $1`
	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Email, &app.Phone, &app.ResumeURL, &app.CoverLetter,
		&app.Status, &app.JobPostID, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobPostID string) ([]domain.JobApplication, error) {
	query := `SELECT id, name, email, phone, resume_url, cover_letter, status, job_post_id, created_at
              FROM job_applications WHERE job_post_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, jobPostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Email, &app.Phone, &app.ResumeURL, &app.CoverLetter,
			&app.Status, &app.JobPostID, &app.CreatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Exists is the fast-path duplicate check ahead of Create.
func (r *applicationRepo) Exists(ctx context.Context, email, jobPostID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE email = $1 AND job_post_id = $2)`,
		email, jobPostID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.JobApplication, error) {
	query := `UPDATE job_applications SET status = $2 WHERE id = $1
              RETURNING id, name, email, phone, resume_url, cover_letter, status, job_post_id, created_at`
	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&app.ID, &app.Name, &app.Email, &app.Phone, &app.ResumeURL, &app.CoverLetter,
		&app.Status, &app.JobPostID, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}
