package impl

import (
	"context"
	"testing"
	"time"

	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	mockRepo "homeroom/internal/mocks/repository"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(time.Hour)
	user := &entity.User{
		ID:                      userID,
		Email:                   "user@example.com",
		VerificationToken:       "verify-token",
		VerificationTokenExpiry: &expiry,
	}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByVerificationToken(ctx, "verify-token").Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.True(t, updated.EmailVerified)
					assert.Empty(t, updated.VerificationToken)
					assert.Nil(t, updated.VerificationTokenExpiry)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := svc.VerifyEmail(ctx, &usecase.VerifyEmailInput{Token: "verify-token"})

	require.NoError(t, err)
}

func TestAuthService_VerifyEmail_UnknownToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	tokenErr := errors.Wrap(domainerrors.ErrTokenInvalid, "verification token unknown or already used")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByVerificationToken(ctx, "unknown").Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(tokenErr)

	err := svc.VerifyEmail(ctx, &usecase.VerifyEmailInput{Token: "unknown"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_VerifyEmail_ExpiredToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	// Expired one second ago but not yet purged by the sweep: expiry is
	// enforced here, at use time.
	expiry := time.Now().Add(-time.Second)
	user := &entity.User{
		ID:                      uuid.New(),
		VerificationToken:       "verify-token",
		VerificationTokenExpiry: &expiry,
	}
	tokenErr := errors.Wrap(domainerrors.ErrTokenExpired, "verification token expired")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByVerificationToken(ctx, "verify-token").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(tokenErr)

	err := svc.VerifyEmail(ctx, &usecase.VerifyEmailInput{Token: "verify-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_ResendVerification_UnknownEmailSilent(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	// Unknown address must not be distinguishable from a known one.
	err := svc.ResendVerification(ctx, &usecase.ResendVerificationInput{Email: "nobody@example.com"})

	require.NoError(t, err)
	m.mailer.AssertNotCalled(t, "SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResendVerification_AlreadyVerifiedSilent(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", EmailVerified: true}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)

	err := svc.ResendVerification(ctx, &usecase.ResendVerificationInput{Email: "user@example.com"})

	require.NoError(t, err)
	m.mailer.AssertNotCalled(t, "SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResendVerification_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Name: "User"}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	m.sessionToken.EXPECT().Generate().Return("fresh-token", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "fresh-token", updated.VerificationToken)
					require.NotNil(t, updated.VerificationTokenExpiry)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.mailer.EXPECT().SendVerificationMail(ctx, "user@example.com", "User", "fresh-token").Return(nil)

	err := svc.ResendVerification(ctx, &usecase.ResendVerificationInput{Email: "user@example.com"})

	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"})

	require.NoError(t, err)
	m.mailer.AssertNotCalled(t, "SendPasswordResetMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Name: "User"}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	m.sessionToken.EXPECT().Generate().Return("reset-token", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "reset-token", updated.PasswordResetToken)
					require.NotNil(t, updated.PasswordResetTokenExpiry)
					assert.WithinDuration(t, time.Now().Add(time.Hour), *updated.PasswordResetTokenExpiry, time.Minute)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.mailer.EXPECT().SendPasswordResetMail(ctx, "user@example.com", "User", "reset-token").Return(nil)

	err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "user@example.com"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		ID:                       userID,
		PasswordHash:             "old-hash",
		PasswordResetToken:       "reset-token",
		PasswordResetTokenExpiry: &expiry,
	}

	m.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	m.hasher.EXPECT().Hash("NewPassword123").Return("new-hash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByPasswordResetToken(ctx, "reset-token").Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					// The token is consumed in the same write that stores the hash.
					assert.Equal(t, "new-hash", updated.PasswordHash)
					assert.Empty(t, updated.PasswordResetToken)
					assert.Nil(t, updated.PasswordResetTokenExpiry)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "NewPassword123"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	expiry := time.Now().Add(-time.Second)
	user := &entity.User{
		ID:                       uuid.New(),
		PasswordResetToken:       "reset-token",
		PasswordResetTokenExpiry: &expiry,
	}
	tokenErr := errors.Wrap(domainerrors.ErrTokenExpired, "reset token expired")

	m.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	m.hasher.EXPECT().Hash("NewPassword123").Return("new-hash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByPasswordResetToken(ctx, "reset-token").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(tokenErr)

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "NewPassword123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	tokenErr := errors.Wrap(domainerrors.ErrTokenInvalid, "reset token unknown or already used")

	m.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)
	m.hasher.EXPECT().Hash("NewPassword123").Return("new-hash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByPasswordResetToken(ctx, "unknown").Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(tokenErr)

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "unknown", NewPassword: "NewPassword123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
