// Package firebase implements federated identity verification against
// Firebase Auth, the platform's federated identity provider.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"homeroom/config"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/service"
)

type verifier struct {
	client *fbauth.Client
	logger *slog.Logger
}

// NewVerifier initializes the Firebase app and returns a FederatedVerifier.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.FederatedVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration must be provided")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &verifier{client: client, logger: logger}, nil
}

// VerifyIDToken verifies a Firebase-signed ID token and returns the principal it asserts.
// A token the provider rejects maps to FederatedTokenInvalid; failure to reach
// the provider maps to UpstreamUnavailable so callers never mistake an outage
// for a bad credential.
func (v *verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.FederatedPrincipal, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if fbauth.IsIDTokenInvalid(err) || fbauth.IsIDTokenExpired(err) || fbauth.IsIDTokenRevoked(err) {
			v.logger.Warn("Federated ID token rejected", slog.Any("error", err))

			return nil, domainerrors.ErrFederatedTokenInvalid.WrapMessage("firebase rejected the id token")
		}

		v.logger.Error("Federated provider unreachable", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("failed to verify id token with firebase")
	}

	principal := &service.FederatedPrincipal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		principal.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		principal.PhotoURL = picture
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}

	return principal, nil
}
