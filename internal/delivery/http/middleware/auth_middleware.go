// Package middleware contains the HTTP middleware for the API server.
package middleware

import (
	"strings"

	"homeroom/internal/delivery/http/response"
	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderPlatformAssertion carries the signed assertion attached by the
	// platform-native auth layer in front of this service.
	HeaderPlatformAssertion = "X-Platform-Assertion"

	keyIdentity = "identity"
	keyUser     = "user"
)

// AuthMiddleware is the auth gate: it resolves the request's identity once
// and admits only requests backed by a local user row. It never mutates
// session state; resolution is read-only.
type AuthMiddleware struct {
	identityUc usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUc usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUc: identityUc}
}

// Authenticate admits LocalComplete and LocalIncomplete identities and
// rejects everything else with 401. FederatedPending is rejected here too:
// the server has no onboarding-in-progress concept, that distinction only
// matters to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.resolve(c)
		if !identity.HasLocalUser() {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		setIdentity(c, identity)

		return next(c)
	}
}

// AuthenticateAllowPending also admits FederatedPending identities. Only the
// onboarding route uses this: completing onboarding is exactly the action
// that creates the local row the strict gate demands.
func (m *AuthMiddleware) AuthenticateAllowPending(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.resolve(c)
		if !identity.HasLocalUser() && identity.Kind != entity.IdentityFederatedPending {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		setIdentity(c, identity)

		return next(c)
	}
}

// RequireRole checks that the admitted user holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role == nil {
				// Role missing is an onboarding gap, not a permission error;
				// the error middleware flags it so the client routes to onboarding.
				return domainerrors.ErrRoleRequired
			}
			if *user.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// resolve extracts the raw signals from the request and runs the resolver.
func (m *AuthMiddleware) resolve(c echo.Context) entity.Identity {
	return m.identityUc.Resolve(c.Request().Context(), &usecase.ResolveSignals{
		PlatformAssertion: c.Request().Header.Get(HeaderPlatformAssertion),
		SessionToken:      bearerToken(c),
	})
}

// bearerToken extracts the opaque session token from the Authorization header.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}

func setIdentity(c echo.Context, identity entity.Identity) {
	c.Set(keyIdentity, identity)
	if identity.User != nil {
		c.Set(keyUser, identity.User)
	}
}

// CurrentIdentity returns the identity resolved by the gate for this request.
func CurrentIdentity(c echo.Context) entity.Identity {
	if identity, ok := c.Get(keyIdentity).(entity.Identity); ok {
		return identity
	}

	return entity.Unauthenticated()
}

// CurrentUser returns the admitted user, or nil when the gate admitted a
// pending identity.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(keyUser).(*entity.User); ok {
		return user
	}

	return nil
}
