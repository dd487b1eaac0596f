package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arakkha-job-connect/internal/domain"
)

var (
	ErrJobAlreadySaved = errors.New("job already saved")
	ErrSavedJobNotFound = errors.New("saved job not found")
)

type SavedJobRepository interface {
	Save(ctx context.Context, saved *domain.SavedJob) error
	Unsave(ctx context.Context, profileID, jobID uuid.UUID) error
	Exists(ctx context.Context, profileID, jobID uuid.UUID) (bool, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, params domain.PaginationParams) ([]domain.SavedJob, int64, error)
}

type savedJobRepository struct {
	db *sqlx.DB
}

func NewSavedJobRepository(db *sqlx.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Save(ctx context.Context, saved *domain.SavedJob) error {
	query := `
		INSERT INTO saved_jobs (id, profile_id, job_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query, saved.ID, saved.ProfileID, saved.JobID).Scan(&saved.CreatedAt)
	if isUniqueViolation(err) {
		return ErrJobAlreadySaved
	}
	return err
}

func (r *savedJobRepository) Unsave(ctx context.Context, profileID, jobID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_jobs WHERE profile_id = $1 AND job_id = $2`, profileID, jobID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *savedJobRepository) Exists(ctx context.Context, profileID, jobID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE profile_id = $1 AND job_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, profileID, jobID)
	return exists, err
}

func (r *savedJobRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, params domain.PaginationParams) ([]domain.SavedJob, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM saved_jobs WHERE profile_id = $1`, profileID); err != nil {
		return nil, 0, err
	}

	var saved []domain.SavedJob
	query := `
		SELECT sj.id, sj.profile_id, sj.job_id, sj.created_at,
		       j.title as job_title, j.location as job_location, j.is_active as job_is_active,
		       EXISTS(
		           SELECT 1 FROM applications a
		           WHERE a.job_id = sj.job_id AND a.profile_id = sj.profile_id
		       ) as is_applied
		FROM saved_jobs sj
		JOIN jobs j ON j.id = sj.job_id
		WHERE sj.profile_id = $1
		ORDER BY sj.created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &saved, query, profileID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return saved, total, nil
}
