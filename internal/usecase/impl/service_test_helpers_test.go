package impl

import (
	"io"
	"log/slog"
	"time"

	"homeroom/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:            12,
			VerificationTokenTTL:  24 * time.Hour,
			PasswordResetTokenTTL: time.Hour,
		},
	}
}
