package impl

import (
	"context"
	"log/slog"
	"time"

	"homeroom/config"
	deliverycontext "homeroom/internal/delivery/context"
	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	"homeroom/internal/domain/service"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVerificationTokenTTL  = 24 * time.Hour
	defaultPasswordResetTokenTTL = time.Hour
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	sessionRepo      repository.SessionRepository
	hasher           service.PasswordHasher
	federatedSvc     service.FederatedVerifier
	sessionToken     service.SessionTokenService
	mailer           service.Mailer
	verificationTTL  time.Duration
	passwordResetTTL time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	FederatedSvc service.FederatedVerifier
	SessionToken service.SessionTokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	verificationTTL := defaultVerificationTokenTTL
	passwordResetTTL := defaultPasswordResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.VerificationTokenTTL > 0 {
			verificationTTL = params.Config.Auth.VerificationTokenTTL
		}
		if params.Config.Auth.PasswordResetTokenTTL > 0 {
			passwordResetTTL = params.Config.Auth.PasswordResetTokenTTL
		}
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		sessionRepo:      params.SessionRepo,
		hasher:           params.Hasher,
		federatedSvc:     params.FederatedSvc,
		sessionToken:     params.SessionToken,
		mailer:           params.Mailer,
		verificationTTL:  verificationTTL,
		passwordResetTTL: passwordResetTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete email/password registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	verificationToken, err := srv.sessionToken.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		expiry := time.Now().Add(srv.verificationTTL)
		newUser := &entity.User{
			Name:                    input.Name,
			Email:                   input.Email,
			PasswordHash:            hashedPassword,
			VerificationToken:       verificationToken,
			VerificationTokenExpiry: &expiry,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// Mail delivery failure must not undo the registration; the user can
	// request a resend.
	if mailErr := srv.mailer.SendVerificationMail(ctx, registeredUser.Email, registeredUser.Name, verificationToken); mailErr != nil {
		srv.log(ctx).Warn("Failed to send verification mail", slog.String("email", registeredUser.Email), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// EmailLogin orchestrates the email/password login process.
func (srv *authService) EmailLogin(ctx context.Context, input *usecase.EmailLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting email login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Accounts created through federated sign-in only have no password hash.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.EmailVerified {
		srv.log(ctx).Warn("Login rejected for unverified email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login failed")
	}

	rawToken, err := srv.issueSession(ctx, &entity.Session{
		UserID:    &user.ID,
		Mechanism: entity.MechanismEmail,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{SessionToken: rawToken, User: user}, nil
}

// FederatedLogin verifies a provider ID token and establishes a federated
// session. When the provider account has no local row yet, the session is
// still created so the client can complete onboarding; no user row is
// created implicitly.
func (srv *authService) FederatedLogin(ctx context.Context, input *usecase.FederatedLoginInput) (*usecase.FederatedLoginOutput, error) {
	srv.log(ctx).Debug("Starting federated login")

	principal, err := srv.federatedSvc.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Federated token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify federated ID token")
	}

	user, err := srv.findOrLinkFederatedUser(ctx, principal)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up federated user")
	}

	session := &entity.Session{
		Mechanism:      entity.MechanismFederated,
		FederatedUID:   principal.UID,
		FederatedEmail: principal.Email,
	}
	if user != nil {
		session.UserID = &user.ID
	}

	rawToken, err := srv.issueSession(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session during federated login")
	}

	if user == nil {
		srv.log(ctx).Info("Federated principal has no local account yet", slog.String("uid", principal.UID))

		return &usecase.FederatedLoginOutput{SessionToken: rawToken, Pending: true}, nil
	}

	srv.log(ctx).Debug("Federated user logged in", slog.Any("userID", user.ID))

	return &usecase.FederatedLoginOutput{SessionToken: rawToken, User: user}, nil
}

// findOrLinkFederatedUser resolves the provider principal to a local user.
// An account first registered by email and later signed in through the
// provider is linked by email match, so the two mechanisms converge on one row.
func (srv *authService) findOrLinkFederatedUser(ctx context.Context, principal *service.FederatedPrincipal) (*entity.User, error) {
	user, err := srv.userRepo.FindByFederatedUID(ctx, principal.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by federated uid")
	}

	if principal.Email == "" {
		return nil, repository.ErrUserNotFound
	}

	user, err = srv.userRepo.FindByEmail(ctx, principal.Email)
	if err != nil {
		return nil, err
	}

	var linkedUser *entity.User
	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, findErr := userRepo.FindByID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload user for federated link")
		}

		current.FederatedUID = principal.UID
		if principal.EmailVerified {
			current.EmailVerified = true
		}
		if current.PhotoURL == "" {
			current.PhotoURL = principal.PhotoURL
		}

		if updateErr := userRepo.Update(ctx, current); updateErr != nil {
			return errors.Wrap(updateErr, "failed to link federated uid to existing account")
		}
		linkedUser = current

		return nil
	})
	if txErr != nil {
		return nil, errors.Wrap(txErr, "failed to execute federated link transaction")
	}

	srv.log(ctx).Info("Linked federated uid to existing account", slog.Any("userID", linkedUser.ID))

	return linkedUser, nil
}

// CompleteOnboarding assigns a role, creating the local user row first when
// the caller is a federated principal that has none yet. This is the only
// place a federated-pending identity turns into a local account.
func (srv *authService) CompleteOnboarding(ctx context.Context, identity *entity.Identity, input *usecase.CompleteOnboardingInput) (*entity.User, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "unknown role")
	}

	switch identity.Kind {
	case entity.IdentityLocalIncomplete, entity.IdentityLocalComplete:
		return srv.assignRole(ctx, identity.User.ID, role, input.ParentEmail)
	case entity.IdentityFederatedPending:
		return srv.createFederatedUser(ctx, identity, role, input)
	default:
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no principal to onboard")
	}
}

func (srv *authService) assignRole(ctx context.Context, userID uuid.UUID, role entity.Role, parentEmail string) (*entity.User, error) {
	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for role assignment")
		}

		user.Role = &role
		if linkErr := srv.linkParent(ctx, userRepo, user, role, parentEmail); linkErr != nil {
			return linkErr
		}
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to assign role")
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute role assignment transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role assignment transaction")
	}

	srv.log(ctx).Info("Role assigned", slog.Any("userID", userID), slog.Any("role", role))

	return updatedUser, nil
}

func (srv *authService) createFederatedUser(ctx context.Context, identity *entity.Identity, role entity.Role, input *usecase.CompleteOnboardingInput) (*entity.User, error) {
	var createdUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The resolver may have raced another onboarding request; re-check
		// inside the transaction so the second request degrades to a role update.
		existing, findErr := userRepo.FindByFederatedUID(ctx, identity.FederatedUID)
		if findErr == nil {
			existing.Role = &role
			if linkErr := srv.linkParent(ctx, userRepo, existing, role, input.ParentEmail); linkErr != nil {
				return linkErr
			}
			if updateErr := userRepo.Update(ctx, existing); updateErr != nil {
				return errors.Wrap(updateErr, "failed to update role on existing federated account")
			}
			createdUser = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing federated account")
		}

		// The provider has already verified this address.
		newUser := &entity.User{
			Email:         identity.FederatedEmail,
			Name:          input.Name,
			PhotoURL:      input.PhotoURL,
			FederatedUID:  identity.FederatedUID,
			EmailVerified: true,
			Role:          &role,
		}

		if linkErr := srv.linkParent(ctx, userRepo, newUser, role, input.ParentEmail); linkErr != nil {
			return linkErr
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create federated user during onboarding")
		}
		createdUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute onboarding transaction", slog.String("uid", identity.FederatedUID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute onboarding transaction")
	}

	srv.log(ctx).Info("Federated account onboarded", slog.Any("userID", createdUser.ID), slog.Any("role", role))

	return createdUser, nil
}

// linkParent binds a student account to an existing parent account by email.
// Only students carry the link; the field is ignored for other roles.
func (srv *authService) linkParent(ctx context.Context, userRepo repository.UserRepository, user *entity.User, role entity.Role, parentEmail string) error {
	if role != entity.RoleStudent || parentEmail == "" {
		return nil
	}

	parent, err := userRepo.FindByEmail(ctx, parentEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "parent account not found")
		}

		return errors.Wrap(err, "failed to load parent account for linking")
	}
	if parent.Role == nil || *parent.Role != entity.RoleParent {
		return errors.Wrap(domainerrors.ErrValidationFailed, "linked account is not a parent")
	}

	user.ParentID = &parent.ID

	return nil
}

// Logout invalidates the presented session. Logging out an already-invalid
// session is not an error.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.SessionToken == "" {
		return nil
	}

	tokenHash := srv.sessionToken.HashToken(input.SessionToken)

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Debug("Session invalidated")

	return nil
}

// VerifyEmail consumes a verification token. An unknown token and an expired
// token are distinct failures: the former suggests checking the link, the
// latter requesting a new one.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByVerificationToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "verification token unknown or already used")
			}

			return errors.Wrap(findErr, "failed to find user by verification token")
		}

		if !user.VerificationTokenValid(input.Token, time.Now()) {
			return errors.Wrap(domainerrors.ErrTokenExpired, "verification token expired")
		}

		user.EmailVerified = true
		user.VerificationToken = ""
		user.VerificationTokenExpiry = nil

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark email verified")
		}

		srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	return nil
}

// ResendVerification issues a fresh verification token. The response never
// reveals whether the address is registered.
func (srv *authService) ResendVerification(ctx context.Context, input *usecase.ResendVerificationInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Resend requested for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to find user for resend")
	}

	if user.EmailVerified {
		srv.log(ctx).Debug("Resend requested for already verified email", slog.Any("userID", user.ID))

		return nil
	}

	token, err := srv.sessionToken.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, findErr := userRepo.FindByID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload user for resend")
		}

		expiry := time.Now().Add(srv.verificationTTL)
		current.VerificationToken = token
		current.VerificationTokenExpiry = &expiry

		return userRepo.Update(ctx, current)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute resend verification transaction")
	}

	if mailErr := srv.mailer.SendVerificationMail(ctx, user.Email, user.Name, token); mailErr != nil {
		srv.log(ctx).Warn("Failed to send verification mail", slog.String("email", user.Email), slog.Any("error", mailErr))
	}

	return nil
}

// ForgotPassword issues a reset token. The response never reveals whether the
// address is registered.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.sessionToken.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, findErr := userRepo.FindByID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload user for password reset")
		}

		expiry := time.Now().Add(srv.passwordResetTTL)
		current.PasswordResetToken = token
		current.PasswordResetTokenExpiry = &expiry

		return userRepo.Update(ctx, current)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	if mailErr := srv.mailer.SendPasswordResetMail(ctx, user.Email, user.Name, token); mailErr != nil {
		srv.log(ctx).Warn("Failed to send password reset mail", slog.String("email", user.Email), slog.Any("error", mailErr))
	}

	return nil
}

// ResetPassword consumes a reset token: the token is single-use and cleared
// in the same write that stores the new password hash. Every live session of
// the user is revoked afterwards.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByPasswordResetToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "reset token unknown or already used")
			}

			return errors.Wrap(findErr, "failed to find user by reset token")
		}

		if !user.PasswordResetTokenValid(input.Token, time.Now()) {
			return errors.Wrap(domainerrors.ErrTokenExpired, "reset token expired")
		}

		user.PasswordHash = hashedPassword
		user.PasswordResetToken = ""
		user.PasswordResetTokenExpiry = nil

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to store new password")
		}
		userID = user.ID

		// Revoke every live session inside the same transaction so a stolen
		// session cannot outlive the password change.
		return repoFactory.SessionRepo().DeleteByUserID(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// issueSession generates a raw opaque token, persists its hash and returns
// the raw token to hand to the client. The raw token is never stored.
func (srv *authService) issueSession(ctx context.Context, session *entity.Session) (string, error) {
	rawToken, err := srv.sessionToken.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	session.TokenHash = srv.sessionToken.HashToken(rawToken)

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to persist session")
	}

	return rawToken, nil
}
