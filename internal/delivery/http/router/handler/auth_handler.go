// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"homeroom/internal/delivery/http/response"
	"homeroom/internal/domain/entity"
	"homeroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles the email/password registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "Registration successful, please verify your email")
}

type emailLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginView struct {
	User      *userView `json:"user"`
	SessionID string    `json:"sessionId"`
}

// EmailLogin handles the email/password login request.
func (h *AuthHandler) EmailLogin(c echo.Context) error {
	var req emailLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.EmailLogin(c.Request().Context(), &usecase.EmailLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &loginView{
		User:      newUserView(output.User),
		SessionID: output.SessionToken,
	}, "Login successful")
}

type federatedLoginView struct {
	User           *userView `json:"user,omitempty"`
	SessionID      string    `json:"sessionId"`
	IsExistingUser bool      `json:"isExistingUser"`
	Role           *string   `json:"role"`
}

// FederatedLogin handles sign-in with a federated provider ID token carried
// in the Authorization header.
func (h *AuthHandler) FederatedLogin(c echo.Context) error {
	idToken := bearerValue(c)
	if idToken == "" {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing federated ID token")
	}

	output, err := h.uc.FederatedLogin(c.Request().Context(), &usecase.FederatedLoginInput{IDToken: idToken})
	if err != nil {
		return errors.WithStack(err)
	}

	view := &federatedLoginView{
		SessionID:      output.SessionToken,
		IsExistingUser: !output.Pending,
	}
	if output.User != nil {
		view.User = newUserView(output.User)
		if output.User.Role != nil {
			role := output.User.Role.String()
			view.Role = &role
		}
	}

	return response.Success(c, http.StatusOK, view, "Federated login successful")
}

// Logout invalidates the presented session. Repeated calls do not error.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{SessionToken: bearerValue(c)}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

type verifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// VerifyEmail consumes a verification token from the request body.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.verifyEmailToken(c, req.Token)
}

// VerifyEmailByLink consumes a verification token from the mailed link path.
func (h *AuthHandler) VerifyEmailByLink(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing verification token")
	}

	return h.verifyEmailToken(c, token)
}

func (h *AuthHandler) verifyEmailToken(c echo.Context, token string) error {
	if err := h.uc.VerifyEmail(c.Request().Context(), &usecase.VerifyEmailInput{Token: token}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

type resendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResendVerification issues a fresh verification mail.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req resendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendVerification(c.Request().Context(), &usecase.ResendVerificationInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the address is registered, a verification mail was sent")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a password reset mail.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the address is registered, a reset mail was sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword consumes a reset token and stores the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}

// bearerValue extracts the raw bearer credential from the Authorization header.
func bearerValue(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}

// userView is the safe serialization of a user: no password hash, no tokens.
type userView struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	PhotoURL      string  `json:"photoUrl,omitempty"`
	EmailVerified bool    `json:"emailVerified"`
	Role          *string `json:"role"`
}

func newUserView(user *entity.User) *userView {
	view := &userView{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		PhotoURL:      user.PhotoURL,
		EmailVerified: user.EmailVerified,
	}
	if user.Role != nil {
		role := user.Role.String()
		view.Role = &role
	}

	return view
}
