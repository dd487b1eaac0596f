package jobseeker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"arakkha-job-connect/internal/config"
	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
)

var (
	ErrProfileExists   = errors.New("jobseeker profile already exists")
	ErrProfileRequired = errors.New("jobseeker profile required")
	ErrFileTooLarge    = errors.New("resume file exceeds the size limit")
	ErrBadMimeType     = errors.New("resume must be a PDF or Word document")
)

const maxResumeSize = 5 << 20

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type Service interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertJobseekerProfileInput) (*domain.JobseekerProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.JobseekerProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertJobseekerProfileInput) (*domain.JobseekerProfile, error)

	UploadResume(ctx context.Context, userID uuid.UUID, title, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error
}

type service struct {
	profileRepo repository.JobseekerProfileRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(profileRepo repository.JobseekerProfileRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		profileRepo: profileRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertJobseekerProfileInput) (*domain.JobseekerProfile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := &domain.JobseekerProfile{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: input.FullName,
		Phone:    input.Phone,
		Location: input.Location,
		Summary:  input.Summary,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.JobseekerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertJobseekerProfileInput) (*domain.JobseekerProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = input.FullName
	profile.Phone = input.Phone
	profile.Location = input.Location
	profile.Summary = input.Summary

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) UploadResume(ctx context.Context, userID uuid.UUID, title, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Resume, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fileSize > maxResumeSize {
		return nil, ErrFileTooLarge
	}
	if !allowedResumeTypes[mimeType] {
		return nil, ErrBadMimeType
	}

	resumeID := uuid.New()
	storagePath := fmt.Sprintf("resumes/%s/%s", time.Now().Format("2006/01"), resumeID.String())

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	resume := &domain.Resume{
		ID:          resumeID,
		ProfileID:   profile.ID,
		Title:       title,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
	}

	if err := s.profileRepo.CreateResume(ctx, resume); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	resume.URL = s.getPublicURL(storagePath)
	return resume, nil
}

func (s *service) ListResumes(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	resumes, err := s.profileRepo.ListResumes(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	for i := range resumes {
		resumes[i].URL = s.getPublicURL(resumes[i].StoragePath)
	}
	return resumes, nil
}

func (s *service) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	resume, err := s.profileRepo.GetResume(ctx, resumeID, profile.ID)
	if err != nil {
		return err
	}
	if resume == nil {
		return repository.ErrResumeNotFound
	}

	if err := s.profileRepo.DeleteResume(ctx, resumeID, profile.ID); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, resume.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
