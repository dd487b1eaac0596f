package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"arakkha-job-connect/internal/domain"
)

var (
	ErrDuplicateApplication = errors.New("application already exists for this job")
	ErrJobAtCapacity        = errors.New("job has reached its maximum number of applicants")
	ErrJobInactive          = errors.New("job is not accepting applications")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrJobNotFound          = errors.New("job not found")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// jobCapacityRow is the slice of the job row the admission transaction locks.
type jobCapacityRow struct {
	ID            uuid.UUID  `db:"id"`
	MaxApplicants int        `db:"max_applicants"`
	IsActive      bool       `db:"is_active"`
	Deadline      *time.Time `db:"deadline"`
}

type ApplicationRepository interface {
	// Apply admits an application inside a single transaction: it locks the
	// job row, enforces the capacity gate, inserts the application, closes the
	// job if this submission filled the last slot, and records the employer
	// notification. The unique (job, profile) constraint is the final arbiter
	// of a duplicate race; a violation surfaces as ErrDuplicateApplication.
	//
	// On ErrJobAtCapacity the job deactivation is still committed.
	Apply(ctx context.Context, app *domain.Application, notif *domain.Notification) error

	// UpdateStatus persists an already-validated transition together with the
	// applicant notification, atomically.
	UpdateStatus(ctx context.Context, app *domain.Application, notif *domain.Notification) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ExistsByJobAndProfile(ctx context.Context, jobID, profileID uuid.UUID) (bool, error)
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.ApplicationListItem, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.ApplicationListItem, error)
	ListByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) ([]domain.ApplicationListItem, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ApplicationListItem, error)
	CountByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) (int64, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Apply(ctx context.Context, app *domain.Application, notif *domain.Notification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin apply transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var job jobCapacityRow
	lockQuery := `SELECT id, max_applicants, is_active, deadline FROM jobs WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &job, lockQuery, app.JobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrJobNotFound
		}
		return err
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, app.JobID); err != nil {
		return err
	}

	// The capacity verdict outranks the active flag: a job that auto-closed on
	// filling its last slot keeps refusing latecomers with the capacity error,
	// not the generic inactive one. Close the posting if it is still open so
	// listings stop showing it, and commit that flip even though the
	// application itself is refused.
	if job.MaxApplicants > 0 && count >= job.MaxApplicants {
		if job.IsActive {
			if _, err := tx.ExecContext(ctx, `UPDATE jobs SET is_active = false, updated_at = NOW() WHERE id = $1`, app.JobID); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		return ErrJobAtCapacity
	}

	// ErrJobInactive is reserved for non-capacity closure: manual deactivation
	// or the deadline sweep.
	if !job.IsActive {
		return ErrJobInactive
	}

	insertQuery := `
		INSERT INTO applications (id, job_id, profile_id, status, cover_letter_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING applied_at, updated_at`
	err = tx.QueryRowxContext(ctx, insertQuery,
		app.ID, app.JobID, app.ProfileID, app.Status, app.CoverLetterText,
	).Scan(&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}

	// Re-count after the insert; this submission may have taken the last slot.
	if job.MaxApplicants > 0 && count+1 >= job.MaxApplicants {
		if _, err := tx.ExecContext(ctx, `UPDATE jobs SET is_active = false, updated_at = NOW() WHERE id = $1`, app.JobID); err != nil {
			return err
		}
	}

	if notif != nil {
		if err := insertNotification(ctx, tx, notif); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, app *domain.Application, notif *domain.Notification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin status transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updateQuery := `
		UPDATE applications SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	if err := tx.QueryRowxContext(ctx, updateQuery, app.ID, app.Status).Scan(&app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrApplicationNotFound
		}
		return err
	}

	if notif != nil {
		if err := insertNotification(ctx, tx, notif); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	query := `SELECT * FROM applications WHERE id = $1`
	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ExistsByJobAndProfile(ctx context.Context, jobID, profileID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND profile_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, jobID, profileID)
	return exists, err
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	err := r.db.GetContext(ctx, &count, query, jobID)
	return count, err
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

const applicationListColumns = `
	a.id, a.job_id, j.title AS job_title, a.profile_id,
	p.full_name AS jobseeker_name, u.email AS jobseeker_email,
	a.status, a.cover_letter_text, a.applied_at`

func (r *applicationRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.ApplicationListItem, error) {
	query := `
		SELECT ` + applicationListColumns + `
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN jobseeker_profiles p ON a.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE a.profile_id = $1
		ORDER BY a.applied_at DESC`

	var items []domain.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, profileID)
	return withStatusDisplay(items), err
}

func (r *applicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.ApplicationListItem, error) {
	query := `
		SELECT ` + applicationListColumns + `
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN jobseeker_profiles p ON a.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE j.employer_id = $1
		ORDER BY a.applied_at DESC`

	var items []domain.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, employerID)
	return withStatusDisplay(items), err
}

func (r *applicationRepository) ListByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) ([]domain.ApplicationListItem, error) {
	query := `
		SELECT ` + applicationListColumns + `
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN jobseeker_profiles p ON a.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE j.employer_id = $1 AND a.status = $2
		ORDER BY a.applied_at DESC`

	var items []domain.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, employerID, status)
	return withStatusDisplay(items), err
}

func (r *applicationRepository) ListRecent(ctx context.Context, limit int) ([]domain.ApplicationListItem, error) {
	query := `
		SELECT ` + applicationListColumns + `
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN jobseeker_profiles p ON a.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		ORDER BY a.applied_at DESC
		LIMIT $1`

	var items []domain.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, limit)
	return withStatusDisplay(items), err
}

func (r *applicationRepository) CountByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1 AND a.status = $2`
	err := r.db.GetContext(ctx, &count, query, employerID, status)
	return count, err
}

func withStatusDisplay(items []domain.ApplicationListItem) []domain.ApplicationListItem {
	for i := range items {
		items[i].StatusDisplay = items[i].Status.Display()
	}
	return items
}

func insertNotification(ctx context.Context, tx *sqlx.Tx, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, message, subject_kind, subject_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	return tx.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Kind, notif.Message, notif.SubjectKind, notif.SubjectID,
	).Scan(&notif.CreatedAt)
}
