package handler

import (
	"log/slog"
	"net/http"

	"homeroom/internal/delivery/http/middleware"
	"homeroom/internal/delivery/http/response"
	"homeroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	authUc usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(authUc usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{authUc: authUc, logger: logger}
}

// GetProfile returns the admitted user's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

type updateRoleRequest struct {
	Role        string `json:"role" validate:"required"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	ParentEmail string `json:"parentEmail" validate:"omitempty,email"`
}

// UpdateRole completes onboarding by assigning a role. The route sits behind
// the pending-tolerant gate: a federated principal with no local row yet uses
// exactly this call to create one.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.CurrentIdentity(c)

	user, err := h.authUc.CompleteOnboarding(c.Request().Context(), &identity, &usecase.CompleteOnboardingInput{
		Role:        req.Role,
		Name:        req.DisplayName,
		PhotoURL:    req.PhotoURL,
		ParentEmail: req.ParentEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Role updated")
}
