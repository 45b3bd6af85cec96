package service

// SessionTokenService generates and hashes the opaque session tokens the
// server issues at login. Only the hash is ever persisted.
type SessionTokenService interface {
	// Generate returns a new cryptographically random opaque token.
	Generate() (string, error)

	// HashToken returns the hex-encoded SHA-256 digest of a raw token.
	HashToken(token string) string
}
