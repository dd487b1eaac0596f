package domain

import (
	"time"

	"github.com/google/uuid"
)

// LegalContent holds the static site pages (privacy policy, about us).
type LegalContent struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Slug           string    `json:"slug" db:"slug"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	ContactEmail   *string   `json:"contact_email,omitempty" db:"contact_email"`
	ContactAddress *string   `json:"contact_address,omitempty" db:"contact_address"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type UpsertLegalContentInput struct {
	Title          string  `json:"title" validate:"required,max=255"`
	Content        string  `json:"content" validate:"required"`
	ContactEmail   *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactAddress *string `json:"contact_address,omitempty"`
}
