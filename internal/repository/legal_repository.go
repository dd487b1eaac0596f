package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arakkha-job-connect/internal/domain"
)

type LegalRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.LegalContent, error)
	Upsert(ctx context.Context, content *domain.LegalContent) error
}

type legalRepository struct {
	db *sqlx.DB
}

func NewLegalRepository(db *sqlx.DB) LegalRepository {
	return &legalRepository{db: db}
}

func (r *legalRepository) GetBySlug(ctx context.Context, slug string) (*domain.LegalContent, error) {
	var content domain.LegalContent
	query := `SELECT * FROM legal_contents WHERE slug = $1`
	err := r.db.GetContext(ctx, &content, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *legalRepository) Upsert(ctx context.Context, content *domain.LegalContent) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}

	query := `
		INSERT INTO legal_contents (id, slug, title, content, contact_email, contact_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slug) DO UPDATE
		SET title = EXCLUDED.title,
		    content = EXCLUDED.content,
		    contact_email = EXCLUDED.contact_email,
		    contact_address = EXCLUDED.contact_address,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		content.ID, content.Slug, content.Title, content.Content, content.ContactEmail, content.ContactAddress,
	).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
}
