// Package logs builds the process-wide logger from configuration.
package logs

import (
	"log/slog"
	"os"

	"homeroom/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the slog.Logger shared by every component: JSON output for
// deployments, text output when pretty logging is enabled.
func New(params Params) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(params.Config.Env.Log.Level)); err != nil {
		return nil, errors.Wrapf(err, "unknown log level: %s", params.Config.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	if params.Config.Env.Log.Pretty {
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
}
