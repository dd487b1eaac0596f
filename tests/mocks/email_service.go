package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}

func (m *EmailService) SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error {
	args := m.Called(ctx, toEmail, name, verificationToken)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	args := m.Called(ctx, toEmail, name, resetToken)
	return args.Error(0)
}

func (m *EmailService) SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle string) error {
	args := m.Called(ctx, toEmail, name, jobTitle)
	return args.Error(0)
}

func (m *EmailService) SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, statusDisplay string) error {
	args := m.Called(ctx, toEmail, name, jobTitle, statusDisplay)
	return args.Error(0)
}

func (m *EmailService) SendNewApplicantEmail(ctx context.Context, toEmail, name, applicantName, jobTitle string) error {
	args := m.Called(ctx, toEmail, name, applicantName, jobTitle)
	return args.Error(0)
}
