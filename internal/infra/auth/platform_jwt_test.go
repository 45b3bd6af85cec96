package auth

import (
	"testing"
	"time"

	"homeroom/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlatformSecret = "test-platform-secret"

func newTestVerifier(t *testing.T) *platformJWTVerifier {
	t.Helper()

	verifier, err := NewPlatformTokenVerifier(&config.Config{
		Platform: &config.PlatformConfig{
			Secret: testPlatformSecret,
			Issuer: "platform",
		},
	})
	require.NoError(t, err)

	return verifier.(*platformJWTVerifier)
}

func signAssertion(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestPlatformTokenVerifier_Valid(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	assertion := signAssertion(t, testPlatformSecret, jwt.RegisteredClaims{
		Issuer:    "platform",
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	principal, err := verifier.Verify(assertion)

	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
}

func TestPlatformTokenVerifier_Expired(t *testing.T) {
	verifier := newTestVerifier(t)

	assertion := signAssertion(t, testPlatformSecret, jwt.RegisteredClaims{
		Issuer:    "platform",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	_, err := verifier.Verify(assertion)

	require.Error(t, err)
}

func TestPlatformTokenVerifier_WrongSecret(t *testing.T) {
	verifier := newTestVerifier(t)

	assertion := signAssertion(t, "another-secret", jwt.RegisteredClaims{
		Issuer:    "platform",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.Verify(assertion)

	require.Error(t, err)
}

func TestPlatformTokenVerifier_WrongIssuer(t *testing.T) {
	verifier := newTestVerifier(t)

	assertion := signAssertion(t, testPlatformSecret, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.Verify(assertion)

	require.Error(t, err)
}

func TestPlatformTokenVerifier_SubjectNotAUserID(t *testing.T) {
	verifier := newTestVerifier(t)

	assertion := signAssertion(t, testPlatformSecret, jwt.RegisteredClaims{
		Issuer:    "platform",
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.Verify(assertion)

	require.Error(t, err)
}

func TestNewPlatformTokenVerifier_RequiresSecret(t *testing.T) {
	_, err := NewPlatformTokenVerifier(&config.Config{Platform: &config.PlatformConfig{}})

	require.Error(t, err)
}
