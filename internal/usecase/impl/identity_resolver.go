// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "homeroom/internal/delivery/context"
	"homeroom/internal/domain/entity"
	"homeroom/internal/domain/repository"
	"homeroom/internal/domain/service"
	"homeroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityResolver implements the IdentityUsecase interface.
//
// Resolution walks the mechanisms in fixed priority order: platform assertion,
// then federated session, then email/password session. A request could carry
// stale data from more than one mechanism at once, so the order is deliberate
// and first match wins. Any signal that fails verification or names a row that
// no longer exists is treated as absent for that mechanism and resolution
// falls through. Resolve therefore never fails; the worst outcome is
// Unauthenticated.
type identityResolver struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	platformSvc  service.PlatformTokenVerifier
	sessionToken service.SessionTokenService
	logger       *slog.Logger
}

// IdentityResolverParams holds dependencies for identityResolver, injected by Fx.
type IdentityResolverParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	PlatformSvc  service.PlatformTokenVerifier
	SessionToken service.SessionTokenService
	Logger       *slog.Logger
}

// NewIdentityResolver is the constructor for identityResolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityUsecase {
	return &identityResolver{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		platformSvc:  params.PlatformSvc,
		sessionToken: params.SessionToken,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve maps the request's raw signals to exactly one Identity variant.
func (srv *identityResolver) Resolve(ctx context.Context, signals *usecase.ResolveSignals) entity.Identity {
	if signals == nil {
		return entity.Unauthenticated()
	}

	if identity, ok := srv.resolvePlatform(ctx, signals.PlatformAssertion); ok {
		return identity
	}

	if identity, ok := srv.resolveSession(ctx, signals.SessionToken); ok {
		return identity
	}

	return entity.Unauthenticated()
}

// resolvePlatform handles the highest-priority signal: the assertion attached
// by the platform-native auth layer. A bad signature or a stale user id both
// mean "signal absent".
func (srv *identityResolver) resolvePlatform(ctx context.Context, assertion string) (entity.Identity, bool) {
	if assertion == "" {
		return entity.Identity{}, false
	}

	principal, err := srv.platformSvc.Verify(assertion)
	if err != nil {
		srv.log(ctx).Debug("Platform assertion rejected, falling through", slog.Any("error", err))

		return entity.Identity{}, false
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Platform assertion names unknown user, falling through", slog.Any("userID", principal.UserID))
		} else {
			srv.log(ctx).Warn("User lookup for platform assertion failed, falling through", slog.Any("error", err))
		}

		return entity.Identity{}, false
	}

	return entity.FromUser(user), true
}

// resolveSession handles the bearer token. One token names at most one session
// record; the record's mechanism decides whether it acts as the federated or
// the email/password signal.
func (srv *identityResolver) resolveSession(ctx context.Context, token string) (entity.Identity, bool) {
	if token == "" {
		return entity.Identity{}, false
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.sessionToken.HashToken(token))
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Session lookup failed, falling through", slog.Any("error", err))
		}

		return entity.Identity{}, false
	}

	switch session.Mechanism {
	case entity.MechanismFederated:
		return srv.resolveFederatedSession(ctx, session)
	case entity.MechanismEmail:
		return srv.resolveEmailSession(ctx, session)
	default:
		srv.log(ctx).Warn("Session has unknown mechanism, falling through", slog.String("mechanism", string(session.Mechanism)))

		return entity.Identity{}, false
	}
}

// resolveFederatedSession looks up the local user by the provider subject id.
// No matching row is a defined outcome, not an error: the principal is valid
// but onboarding has not created the local row yet. The row is never created
// implicitly here.
func (srv *identityResolver) resolveFederatedSession(ctx context.Context, session *entity.Session) (entity.Identity, bool) {
	if session.FederatedUID == "" {
		srv.log(ctx).Warn("Federated session missing subject id, falling through", slog.Any("sessionID", session.ID))

		return entity.Identity{}, false
	}

	user, err := srv.userRepo.FindByFederatedUID(ctx, session.FederatedUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.FederatedPending(session.FederatedUID, session.FederatedEmail), true
		}

		srv.log(ctx).Warn("User lookup for federated session failed, falling through", slog.Any("error", err))

		return entity.Identity{}, false
	}

	return entity.FromUser(user), true
}

// resolveEmailSession looks up the local user by the session-bound id.
func (srv *identityResolver) resolveEmailSession(ctx context.Context, session *entity.Session) (entity.Identity, bool) {
	if session.UserID == nil {
		srv.log(ctx).Warn("Email session missing user id, falling through", slog.Any("sessionID", session.ID))

		return entity.Identity{}, false
	}

	user, err := srv.userRepo.FindByID(ctx, *session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Email session names unknown user, falling through", slog.Any("userID", *session.UserID))
		} else {
			srv.log(ctx).Warn("User lookup for email session failed, falling through", slog.Any("error", err))
		}

		return entity.Identity{}, false
	}

	return entity.FromUser(user), true
}
