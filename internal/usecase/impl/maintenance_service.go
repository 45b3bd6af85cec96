package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "homeroom/internal/delivery/context"
	"homeroom/internal/domain/repository"
	"homeroom/internal/infra/metrics"
	"homeroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maintenanceService implements the MaintenanceUsecase interface.
//
// Both bulk operations are conditioned on expiry timestamps, so the sweep is
// safe to run concurrently with live traffic: a row verified while the delete
// runs survives because its flag flips before the where clause sees it, and a
// row expiring mid-sweep is simply picked up next tick.
type maintenanceService struct {
	userRepo repository.UserRepository
	metrics  *metrics.CleanupMetrics
	logger   *slog.Logger
}

// MaintenanceServiceParams holds dependencies for maintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  *metrics.CleanupMetrics
	Logger   *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		userRepo: params.UserRepo,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RunCleanup performs one sweep of the credential store. A failed sweep is
// reported and retried only on the next scheduled tick.
func (srv *maintenanceService) RunCleanup(ctx context.Context) (*usecase.CleanupResult, error) {
	now := time.Now()
	srv.metrics.SweepsTotal.Inc()

	deleted, err := srv.userRepo.DeleteExpiredUnverified(ctx, now)
	if err != nil {
		srv.metrics.SweepErrorsTotal.Inc()
		srv.log(ctx).Error("Cleanup sweep failed deleting unverified users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete expired unverified users")
	}

	cleared, err := srv.userRepo.ClearExpiredPasswordResetTokens(ctx, now)
	if err != nil {
		srv.metrics.SweepErrorsTotal.Inc()
		srv.log(ctx).Error("Cleanup sweep failed clearing reset tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to clear expired password reset tokens")
	}

	srv.metrics.UsersDeletedTotal.Add(float64(deleted))
	srv.metrics.ResetTokensCleared.Add(float64(cleared))

	srv.log(ctx).Info("Cleanup sweep completed",
		slog.Int64("usersDeleted", deleted),
		slog.Int64("resetTokensCleared", cleared))

	return &usecase.CleanupResult{
		UsersDeleted:       deleted,
		ResetTokensCleared: cleared,
	}, nil
}
