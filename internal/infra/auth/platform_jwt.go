// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"homeroom/config"
	"homeroom/internal/domain/service"
)

// platformJWTVerifier verifies the signed assertion the hosting platform's
// auth layer attaches to proxied requests. The subject claim carries the
// bound local user id.
type platformJWTVerifier struct {
	secret []byte
	issuer string
}

// NewPlatformTokenVerifier is the constructor for platformJWTVerifier.
func NewPlatformTokenVerifier(cfg *config.Config) (service.PlatformTokenVerifier, error) {
	if cfg.Platform == nil || cfg.Platform.Secret == "" {
		return nil, errors.New("platform assertion secret must be provided")
	}

	return &platformJWTVerifier{
		secret: []byte(cfg.Platform.Secret),
		issuer: cfg.Platform.Issuer,
	}, nil
}

// Verify checks the assertion's signature, issuer and expiry.
func (v *platformJWTVerifier) Verify(assertion string) (*service.PlatformPrincipal, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(assertion, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return v.secret, nil
	}, jwt.WithTimeFunc(time.Now))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(err, "invalid platform assertion")
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, errors.Errorf("unexpected platform assertion issuer: %s", claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "platform assertion subject is not a user id")
	}

	return &service.PlatformPrincipal{UserID: userID}, nil
}
