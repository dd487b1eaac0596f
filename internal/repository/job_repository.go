package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arakkha-job-connect/internal/domain"
)

var ErrDuplicateCategory = errors.New("category already exists for this user")

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	ListActive(ctx context.Context) ([]domain.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Job, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error)

	// DeactivateExpired closes every active posting whose deadline has passed.
	// It is idempotent and runs at list-read time.
	DeactivateExpired(ctx context.Context) (int64, error)

	CreateCategory(ctx context.Context, category *domain.JobCategory) error
	ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (id, employer_id, title, description, location, job_type, salary, category_id, is_active, max_applicants, deadline, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Description, job.Location, job.JobType,
		job.Salary, job.CategoryID, job.IsActive, job.MaxApplicants, job.Deadline, job.Priority,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	query := `SELECT * FROM jobs WHERE id = $1`
	err := r.db.GetContext(ctx, &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, location = $4, job_type = $5, salary = $6,
		    category_id = $7, max_applicants = $8, deadline = $9, priority = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.JobType, job.Salary,
		job.CategoryID, job.MaxApplicants, job.Deadline, job.Priority,
	).Scan(&job.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrJobNotFound
	}
	return err
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE jobs SET is_active = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, active)
	return err
}

func (r *jobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	query := `
		SELECT * FROM jobs
		WHERE is_active = true AND (deadline IS NULL OR deadline >= CURRENT_DATE)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &jobs, query)
	return jobs, err
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Job, error) {
	var jobs []domain.Job
	query := `SELECT * FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &jobs, query, employerID)
	return jobs, err
}

func (r *jobRepository) ListAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	query := `SELECT * FROM jobs ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &jobs, query)
	return jobs, err
}

func (r *jobRepository) Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error) {
	var jobs []domain.Job
	query := `
		SELECT * FROM jobs
		WHERE is_active = true
		  AND (deadline IS NULL OR deadline >= CURRENT_DATE)
		  AND ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		ORDER BY
			CASE priority WHEN 'FEATURED' THEN 0 WHEN 'URGENT' THEN 1 ELSE 2 END,
			created_at DESC`
	err := r.db.SelectContext(ctx, &jobs, query, params.Query, params.Location)
	return jobs, err
}

func (r *jobRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	query := `UPDATE jobs SET is_active = false, updated_at = NOW() WHERE is_active = true AND deadline < CURRENT_DATE`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	return n, nil
}

func (r *jobRepository) CreateCategory(ctx context.Context, category *domain.JobCategory) error {
	query := `
		INSERT INTO job_categories (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		category.ID, category.UserID, category.Name,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateCategory
	}
	return err
}

func (r *jobRepository) ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error) {
	var categories []domain.JobCategory
	query := `SELECT * FROM job_categories WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &categories, query, userID)
	return categories, err
}

func (r *jobRepository) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_categories WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
