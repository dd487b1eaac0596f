package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arakkha-job-connect/internal/domain"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrResumeNotFound  = errors.New("resume not found")
)

type JobseekerProfileRepository interface {
	Create(ctx context.Context, profile *domain.JobseekerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobseekerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.JobseekerProfile, error)
	Update(ctx context.Context, profile *domain.JobseekerProfile) error

	CreateResume(ctx context.Context, resume *domain.Resume) error
	ListResumes(ctx context.Context, profileID uuid.UUID) ([]domain.Resume, error)
	GetResume(ctx context.Context, id, profileID uuid.UUID) (*domain.Resume, error)
	DeleteResume(ctx context.Context, id, profileID uuid.UUID) error
}

type jobseekerProfileRepository struct {
	db *sqlx.DB
}

func NewJobseekerProfileRepository(db *sqlx.DB) JobseekerProfileRepository {
	return &jobseekerProfileRepository{db: db}
}

func (r *jobseekerProfileRepository) Create(ctx context.Context, profile *domain.JobseekerProfile) error {
	query := `
		INSERT INTO jobseeker_profiles (id, user_id, full_name, phone, location, summary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.UserID, profile.FullName, profile.Phone, profile.Location, profile.Summary,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *jobseekerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobseekerProfile, error) {
	var profile domain.JobseekerProfile
	query := `SELECT * FROM jobseeker_profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *jobseekerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.JobseekerProfile, error) {
	var profile domain.JobseekerProfile
	query := `SELECT * FROM jobseeker_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *jobseekerProfileRepository) Update(ctx context.Context, profile *domain.JobseekerProfile) error {
	query := `
		UPDATE jobseeker_profiles
		SET full_name = $2, phone = $3, location = $4, summary = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.FullName, profile.Phone, profile.Location, profile.Summary,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProfileNotFound
	}
	return err
}

func (r *jobseekerProfileRepository) CreateResume(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (id, profile_id, title, file_name, file_size, mime_type, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		resume.ID, resume.ProfileID, resume.Title, resume.FileName, resume.FileSize, resume.MimeType, resume.StoragePath,
	).Scan(&resume.CreatedAt)
}

func (r *jobseekerProfileRepository) ListResumes(ctx context.Context, profileID uuid.UUID) ([]domain.Resume, error) {
	var resumes []domain.Resume
	query := `SELECT * FROM resumes WHERE profile_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &resumes, query, profileID)
	return resumes, err
}

func (r *jobseekerProfileRepository) GetResume(ctx context.Context, id, profileID uuid.UUID) (*domain.Resume, error) {
	var resume domain.Resume
	query := `SELECT * FROM resumes WHERE id = $1 AND profile_id = $2`
	err := r.db.GetContext(ctx, &resume, query, id, profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *jobseekerProfileRepository) DeleteResume(ctx context.Context, id, profileID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

type EmployerProfileRepository interface {
	Create(ctx context.Context, profile *domain.EmployerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error)
	Update(ctx context.Context, profile *domain.EmployerProfile) error
	ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.EmployerProfile, int64, error)
}

type employerProfileRepository struct {
	db *sqlx.DB
}

func NewEmployerProfileRepository(db *sqlx.DB) EmployerProfileRepository {
	return &employerProfileRepository{db: db}
}

func (r *employerProfileRepository) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (id, user_id, business_name, about, website, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.UserID, profile.BusinessName, profile.About, profile.Website, profile.Location,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *employerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error) {
	var profile domain.EmployerProfile
	query := `SELECT * FROM employer_profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	var profile domain.EmployerProfile
	query := `SELECT * FROM employer_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employerProfileRepository) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		UPDATE employer_profiles
		SET business_name = $2, about = $3, website = $4, location = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.BusinessName, profile.About, profile.Website, profile.Location,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProfileNotFound
	}
	return err
}

func (r *employerProfileRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.EmployerProfile, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM employer_profiles`); err != nil {
		return nil, 0, err
	}

	var profiles []domain.EmployerProfile
	query := `
		SELECT * FROM employer_profiles
		ORDER BY business_name
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &profiles, query, params.PageSize, params.Offset())
	return profiles, total, err
}
