package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	mockUc "homeroom/internal/mocks/usecase"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGateContext(t *testing.T, header http.Header) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_AdmitsLocalUser(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	user := &entity.User{ID: uuid.New()}
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Return(entity.FromUser(user))

	gate := NewAuthMiddleware(identityUc)
	c, rec := newGateContext(t, http.Header{"Authorization": {"Bearer raw-token"}})

	handlerCalled := false
	err := gate.Authenticate(func(c echo.Context) error {
		handlerCalled = true
		assert.Equal(t, user.ID, CurrentUser(c).ID)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsUnauthenticated(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Return(entity.Unauthenticated())

	gate := NewAuthMiddleware(identityUc)
	c, rec := newGateContext(t, nil)

	err := gate.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsFederatedPending(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Return(entity.FederatedPending("uid-1", "new@example.com"))

	gate := NewAuthMiddleware(identityUc)
	c, rec := newGateContext(t, http.Header{"Authorization": {"Bearer raw-token"}})

	// A pending principal has no local row and the strict gate rejects it.
	err := gate.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AuthenticateAllowPending_AdmitsFederatedPending(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Return(entity.FederatedPending("uid-1", "new@example.com"))

	gate := NewAuthMiddleware(identityUc)
	c, rec := newGateContext(t, http.Header{"Authorization": {"Bearer raw-token"}})

	handlerCalled := false
	err := gate.AuthenticateAllowPending(func(c echo.Context) error {
		handlerCalled = true
		identity := CurrentIdentity(c)
		assert.Equal(t, entity.IdentityFederatedPending, identity.Kind)
		assert.Nil(t, CurrentUser(c))

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_AuthenticateAllowPending_RejectsUnauthenticated(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Return(entity.Unauthenticated())

	gate := NewAuthMiddleware(identityUc)
	c, rec := newGateContext(t, nil)

	err := gate.AuthenticateAllowPending(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExtractsSignals(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Run(func(ctx context.Context, signals *usecase.ResolveSignals) {
			assert.Equal(t, "signed-assertion", signals.PlatformAssertion)
			assert.Equal(t, "raw-token", signals.SessionToken)
		}).
		Return(entity.Unauthenticated())

	gate := NewAuthMiddleware(identityUc)
	c, _ := newGateContext(t, http.Header{
		"Authorization":         {"Bearer raw-token"},
		HeaderPlatformAssertion: {"signed-assertion"},
	})

	_ = gate.Authenticate(okHandler)(c)
}

func TestAuthMiddleware_MalformedAuthorizationHeaderIgnored(t *testing.T) {
	identityUc := mockUc.NewMockIdentityUsecase(t)
	identityUc.EXPECT().Resolve(mock.Anything, mock.AnythingOfType("*usecase.ResolveSignals")).
		Run(func(ctx context.Context, signals *usecase.ResolveSignals) {
			assert.Empty(t, signals.SessionToken)
		}).
		Return(entity.Unauthenticated())

	gate := NewAuthMiddleware(identityUc)
	c, _ := newGateContext(t, http.Header{"Authorization": {"Basic dXNlcjpwYXNz"}})

	_ = gate.Authenticate(okHandler)(c)
}

func TestAuthMiddleware_RequireRole_Matches(t *testing.T) {
	gate := NewAuthMiddleware(mockUc.NewMockIdentityUsecase(t))
	c, rec := newGateContext(t, nil)

	role := entity.RoleTutor
	c.Set(keyUser, &entity.User{ID: uuid.New(), Role: &role})

	err := gate.RequireRole(entity.RoleTutor)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_WrongRole(t *testing.T) {
	gate := NewAuthMiddleware(mockUc.NewMockIdentityUsecase(t))
	c, rec := newGateContext(t, nil)

	role := entity.RoleParent
	c.Set(keyUser, &entity.User{ID: uuid.New(), Role: &role})

	err := gate.RequireRole(entity.RoleTutor)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_NoRoleIsOnboardingGap(t *testing.T) {
	gate := NewAuthMiddleware(mockUc.NewMockIdentityUsecase(t))
	c, _ := newGateContext(t, nil)

	c.Set(keyUser, &entity.User{ID: uuid.New()})

	err := gate.RequireRole(entity.RoleTutor)(okHandler)(c)

	// Returned as an error so the error middleware can attach the
	// needs-role hint instead of a plain 403.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleRequired))
}
