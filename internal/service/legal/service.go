package legal

import (
	"context"
	"errors"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrUnknownSlug  = errors.New("unknown page slug")
)

var knownSlugs = map[string]bool{
	"privacy-policy": true,
	"about-us":       true,
}

type Service interface {
	GetPage(ctx context.Context, slug string) (*domain.LegalContent, error)
	UpsertPage(ctx context.Context, slug string, input domain.UpsertLegalContentInput) (*domain.LegalContent, error)
}

type service struct {
	legalRepo repository.LegalRepository
}

func NewService(legalRepo repository.LegalRepository) Service {
	return &service{
		legalRepo: legalRepo,
	}
}

func (s *service) GetPage(ctx context.Context, slug string) (*domain.LegalContent, error) {
	if !knownSlugs[slug] {
		return nil, ErrUnknownSlug
	}

	content, err := s.legalRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrPageNotFound
	}
	return content, nil
}

func (s *service) UpsertPage(ctx context.Context, slug string, input domain.UpsertLegalContentInput) (*domain.LegalContent, error) {
	if !knownSlugs[slug] {
		return nil, ErrUnknownSlug
	}

	content := &domain.LegalContent{
		Slug:           slug,
		Title:          input.Title,
		Content:        input.Content,
		ContactEmail:   input.ContactEmail,
		ContactAddress: input.ContactAddress,
	}

	if err := s.legalRepo.Upsert(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}
