package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"arakkha-job-connect/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
	SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error
	SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle string) error
	SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, statusDisplay string) error
	SendNewApplicantEmail(ctx context.Context, toEmail, name, applicantName, jobTitle string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Arakkha Job Connect <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Welcome to Arakkha Job Connect",
		Name:  name,
		Link:  fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Welcome to Arakkha Job Connect!", "welcome.html", data)
}

func (s *service) SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Verify your email",
		Name:  name,
		Link:  fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken),
	}
	return s.sendEmail(toEmail, "Verify your email - Arakkha Job Connect", "verification.html", data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Reset your password",
		Name:  name,
		Link:  fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
	}
	return s.sendEmail(toEmail, "Password reset request - Arakkha Job Connect", "reset_password.html", data)
}

func (s *service) SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle string) error {
	data := struct {
		Title    string
		Name     string
		JobTitle string
	}{
		Title:    "Application received",
		Name:     name,
		JobTitle: jobTitle,
	}
	return s.sendEmail(toEmail, fmt.Sprintf("Application received for %s", jobTitle), "application_received.html", data)
}

func (s *service) SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, statusDisplay string) error {
	color := "#10b981"
	if statusDisplay == "Rejected" {
		color = "#ef4444"
	}

	data := struct {
		Title    string
		Name     string
		JobTitle string
		Status   string
		Color    string
	}{
		Title:    "Application update",
		Name:     name,
		JobTitle: jobTitle,
		Status:   statusDisplay,
		Color:    color,
	}
	return s.sendEmail(toEmail, fmt.Sprintf("Your application for %s is now %s", jobTitle, statusDisplay), "application_status.html", data)
}

func (s *service) SendNewApplicantEmail(ctx context.Context, toEmail, name, applicantName, jobTitle string) error {
	data := struct {
		Title         string
		Name          string
		ApplicantName string
		JobTitle      string
	}{
		Title:         "New applicant",
		Name:          name,
		ApplicantName: applicantName,
		JobTitle:      jobTitle,
	}
	return s.sendEmail(toEmail, fmt.Sprintf("New applicant for %s", jobTitle), "new_applicant.html", data)
}
