package impl

import (
	"context"
	"testing"

	"homeroom/internal/domain/entity"
	"homeroom/internal/domain/repository"
	"homeroom/internal/domain/service"
	mockRepo "homeroom/internal/mocks/repository"
	mockSvc "homeroom/internal/mocks/service"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type resolverMocks struct {
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	platformSvc  *mockSvc.MockPlatformTokenVerifier
	sessionToken *mockSvc.MockSessionTokenService
}

func newResolver(t *testing.T) (usecase.IdentityUsecase, *resolverMocks) {
	t.Helper()

	m := &resolverMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		platformSvc:  mockSvc.NewMockPlatformTokenVerifier(t),
		sessionToken: mockSvc.NewMockSessionTokenService(t),
	}

	resolver := NewIdentityResolver(IdentityResolverParams{
		UserRepo:     m.userRepo,
		SessionRepo:  m.sessionRepo,
		PlatformSvc:  m.platformSvc,
		SessionToken: m.sessionToken,
		Logger:       newDiscardLogger(),
	})

	return resolver, m
}

func roleOf(r entity.Role) *entity.Role {
	return &r
}

func TestIdentityResolver_NoSignals(t *testing.T) {
	resolver, _ := newResolver(t)

	identity := resolver.Resolve(context.Background(), &usecase.ResolveSignals{})

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}

func TestIdentityResolver_NilSignals(t *testing.T) {
	resolver, _ := newResolver(t)

	identity := resolver.Resolve(context.Background(), nil)

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}

func TestIdentityResolver_PlatformAssertion_CompleteUser(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: roleOf(entity.RoleTutor)}

	m.platformSvc.EXPECT().Verify("assertion").Return(&service.PlatformPrincipal{UserID: userID}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{PlatformAssertion: "assertion"})

	assert.Equal(t, entity.IdentityLocalComplete, identity.Kind)
	assert.Equal(t, userID, identity.UserID())
}

func TestIdentityResolver_PlatformAssertion_RolelessUser(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	m.platformSvc.EXPECT().Verify("assertion").Return(&service.PlatformPrincipal{UserID: userID}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{PlatformAssertion: "assertion"})

	assert.Equal(t, entity.IdentityLocalIncomplete, identity.Kind)
}

func TestIdentityResolver_PlatformAssertion_OutranksSession(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: roleOf(entity.RoleParent)}

	m.platformSvc.EXPECT().Verify("assertion").Return(&service.PlatformPrincipal{UserID: userID}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	// The session token must never be consulted when the assertion resolves.
	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{
		PlatformAssertion: "assertion",
		SessionToken:      "session-token",
	})

	assert.Equal(t, entity.IdentityLocalComplete, identity.Kind)
	m.sessionRepo.AssertNotCalled(t, "FindByTokenHash", mock.Anything, mock.Anything)
}

func TestIdentityResolver_InvalidAssertion_FallsThroughToSession(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: roleOf(entity.RoleStudent)}

	m.platformSvc.EXPECT().Verify("garbage").Return(nil, assert.AnError)
	m.sessionToken.EXPECT().HashToken("session-token").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		UserID:    &userID,
		Mechanism: entity.MechanismEmail,
	}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{
		PlatformAssertion: "garbage",
		SessionToken:      "session-token",
	})

	assert.Equal(t, entity.IdentityLocalComplete, identity.Kind)
}

func TestIdentityResolver_StaleAssertion_UserDeleted_FallsThrough(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	goneID := uuid.New()

	m.platformSvc.EXPECT().Verify("assertion").Return(&service.PlatformPrincipal{UserID: goneID}, nil)
	m.userRepo.EXPECT().FindByID(ctx, goneID).Return(nil, repository.ErrUserNotFound)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{PlatformAssertion: "assertion"})

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}

func TestIdentityResolver_EmailSession_CompleteUser(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: roleOf(entity.RoleParent)}

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		UserID:    &userID,
		Mechanism: entity.MechanismEmail,
	}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityLocalComplete, identity.Kind)
	assert.Equal(t, userID, identity.UserID())
}

func TestIdentityResolver_EmailSession_UserDeleted_FallsThrough(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	goneID := uuid.New()

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		UserID:    &goneID,
		Mechanism: entity.MechanismEmail,
	}, nil)
	m.userRepo.EXPECT().FindByID(ctx, goneID).Return(nil, repository.ErrUserNotFound)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}

func TestIdentityResolver_UnknownToken_Unauthenticated(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(nil, repository.ErrSessionNotFound)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}

func TestIdentityResolver_FederatedSession_WithLocalUser(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, FederatedUID: "uid-1", Role: roleOf(entity.RoleTutor)}

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		Mechanism:      entity.MechanismFederated,
		FederatedUID:   "uid-1",
		FederatedEmail: "tutor@example.com",
	}, nil)
	m.userRepo.EXPECT().FindByFederatedUID(ctx, "uid-1").Return(user, nil)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityLocalComplete, identity.Kind)
}

func TestIdentityResolver_FederatedSession_NoLocalUser_Pending(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		Mechanism:      entity.MechanismFederated,
		FederatedUID:   "uid-new",
		FederatedEmail: "new@example.com",
	}, nil)
	m.userRepo.EXPECT().FindByFederatedUID(ctx, "uid-new").Return(nil, repository.ErrUserNotFound)

	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityFederatedPending, identity.Kind)
	assert.Equal(t, "uid-new", identity.FederatedUID)
	assert.Equal(t, "new@example.com", identity.FederatedEmail)
	assert.False(t, identity.HasLocalUser())
}

func TestIdentityResolver_FederatedLookupFailure_FallsThrough(t *testing.T) {
	resolver, m := newResolver(t)

	ctx := context.Background()

	m.sessionToken.EXPECT().HashToken("raw").Return("hash")
	m.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{
		Mechanism:    entity.MechanismFederated,
		FederatedUID: "uid-1",
	}, nil)
	m.userRepo.EXPECT().FindByFederatedUID(ctx, "uid-1").Return(nil, assert.AnError)

	// A lookup failure is not "no account": resolution degrades to
	// unauthenticated instead of surfacing an error.
	identity := resolver.Resolve(ctx, &usecase.ResolveSignals{SessionToken: "raw"})

	assert.Equal(t, entity.IdentityUnauthenticated, identity.Kind)
}
