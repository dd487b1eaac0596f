package unit_test

import (
	"context"
	"testing"
	"time"

	"arakkha-job-connect/internal/config"
	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/auth"
	"arakkha-job-connect/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		mockEmail := new(mocks.EmailService)

		svc := auth.NewService(mockUserRepo, mockSessionRepo, mockEmail, testAuthConfig())

		mockUserRepo.On("ExistsByEmail", ctx, "seeker@example.com").Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "seeker@example.com" && u.Role == "jobseeker" && !u.IsVerified
		})).Return(nil).Once()
		mockUserRepo.On("SetEmailVerificationToken", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		// Verification mail goes out on a goroutine after Register returns.
		mockEmail.On("SendEmailVerification", mock.Anything, "seeker@example.com", mock.Anything, mock.Anything).Return(nil).Maybe()

		user, err := svc.Register(ctx, domain.CreateUserInput{
			Email:    "seeker@example.com",
			Password: "password123",
			Role:     "jobseeker",
		})

		assert.NoError(t, err)
		assert.False(t, user.IsVerified)
		assert.NotEqual(t, "password123", user.PasswordHash)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		mockUserRepo.On("ExistsByEmail", ctx, "seeker@example.com").Return(true, nil).Once()

		user, err := svc.Register(ctx, domain.CreateUserInput{
			Email:    "seeker@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		assert.Nil(t, user)
	})

	t.Run("Rejects Admin Role", func(t *testing.T) {
		svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		user, err := svc.Register(ctx, domain.CreateUserInput{
			Email:    "seeker@example.com",
			Password: "password123",
			Role:     "admin",
		})

		assert.ErrorIs(t, err, auth.ErrInvalidRole)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	verifiedUser := func() *domain.User {
		return &domain.User{
			ID:           uuid.New(),
			Email:        "seeker@example.com",
			PasswordHash: string(hash),
			Role:         "jobseeker",
			IsVerified:   true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, new(mocks.EmailService), testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, "seeker@example.com").Return(verifiedUser(), nil).Once()
		mockSessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, tokens, err := svc.Login(ctx, domain.LoginInput{Email: "seeker@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)

		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, "seeker@example.com").Return(verifiedUser(), nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "seeker@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "password123"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unverified Email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		user := verifiedUser()
		user.IsVerified = false
		mockUserRepo.On("GetByEmail", ctx, "seeker@example.com").Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "seeker@example.com", Password: "password123"})

		assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Unknown Token", func(t *testing.T) {
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(new(mocks.UserRepository), mockSessionRepo, new(mocks.EmailService), testAuthConfig())

		mockSessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(nil, nil).Once()

		_, err := svc.RefreshToken(ctx, "bogus")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Rotates Session", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, new(mocks.EmailService), testAuthConfig())

		existing := &repository.Session{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: "hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		mockSessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(existing, nil).Once()
		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "seeker@example.com", Role: "jobseeker", IsVerified: true}, nil).Once()
		mockSessionRepo.On("Revoke", ctx, existing.ID).Return(nil).Once()
		mockSessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		tokens, err := svc.RefreshToken(ctx, "old-refresh-token")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		mockSessionRepo.AssertExpectations(t)
	})
}
