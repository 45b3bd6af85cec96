// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"

	"homeroom/internal/domain/service"
)

const rawTokenBytes = 32

// sessionTokenService issues opaque random session tokens and hashes them
// for storage. The raw token never touches the database.
type sessionTokenService struct{}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService() service.SessionTokenService {
	return &sessionTokenService{}
}

// Generate returns a new cryptographically random opaque token.
func (s *sessionTokenService) Generate() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw token.
func (s *sessionTokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
