// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homeroom/internal/delivery/http/middleware"
	"homeroom/internal/delivery/http/router/handler"
	"homeroom/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	AssignmentHandler *handler.AssignmentHandler
	MessageHandler    *handler.MessageHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	assignmentHandler *handler.AssignmentHandler
	messageHandler    *handler.MessageHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		assignmentHandler: params.AssignmentHandler,
		messageHandler:    params.MessageHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes: no gate, these are how credentials come to exist.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/email-login", r.authHandler.EmailLogin)
		authGroup.POST("/firebase-login", r.authHandler.FederatedLogin)
		// Both logout routes invalidate the presented session; they are
		// separate paths for client symmetry, not separate semantics.
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/firebase-logout", r.authHandler.Logout)
		authGroup.GET("/verify-email/:token", r.authHandler.VerifyEmailByLink)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// The role route tolerates federated-pending identities: completing
	// onboarding is what creates the local row the strict gate demands.
	api.PATCH("/users/me/role", r.userHandler.UpdateRole, r.authMiddleware.AuthenticateAllowPending)

	userGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
	}

	assignmentGroup := api.Group("/assignments", r.authMiddleware.Authenticate)
	{
		assignmentGroup.POST("", r.assignmentHandler.Create, r.authMiddleware.RequireRole(entity.RoleTutor))
		assignmentGroup.GET("", r.assignmentHandler.List)
		assignmentGroup.GET("/:id", r.assignmentHandler.Get)
		assignmentGroup.POST("/:id/submit", r.assignmentHandler.Submit, r.authMiddleware.RequireRole(entity.RoleStudent))
		assignmentGroup.POST("/:id/grade", r.assignmentHandler.Grade, r.authMiddleware.RequireRole(entity.RoleTutor))
	}

	messageGroup := api.Group("/messages", r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.Send)
		messageGroup.GET("/:userId", r.messageHandler.Conversation)
		messageGroup.POST("/:id/read", r.messageHandler.MarkRead)
	}
}
