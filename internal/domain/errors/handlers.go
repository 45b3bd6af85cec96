package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "TOKEN_EXPIRED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the unified JSON envelope used by the error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`

	// NeedsVerification flags a login rejected only because the email is not
	// yet verified, so the client can offer a resend affordance.
	NeedsVerification bool `json:"needsVerification,omitempty"`
	// NeedsRole flags an authenticated request missing onboarding, so the
	// client routes to role selection instead of an error page.
	NeedsRole bool `json:"needsRole,omitempty"`
}
