package impl

import (
	"context"
	"testing"
	"time"

	"homeroom/internal/infra/metrics"
	mockRepo "homeroom/internal/mocks/repository"
	"homeroom/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMaintenanceService(t *testing.T) (usecase.MaintenanceUsecase, *mockRepo.MockUserRepository, *metrics.CleanupMetrics) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	cleanupMetrics := metrics.NewCleanupMetrics(prometheus.NewRegistry())

	svc := NewMaintenanceService(MaintenanceServiceParams{
		UserRepo: userRepo,
		Metrics:  cleanupMetrics,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo, cleanupMetrics
}

func TestMaintenanceService_RunCleanup_Success(t *testing.T) {
	svc, userRepo, cleanupMetrics := newMaintenanceService(t)

	ctx := context.Background()

	userRepo.EXPECT().DeleteExpiredUnverified(ctx, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, now time.Time) {
			assert.WithinDuration(t, time.Now(), now, time.Minute)
		}).
		Return(int64(3), nil)
	userRepo.EXPECT().ClearExpiredPasswordResetTokens(ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)

	result, err := svc.RunCleanup(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.UsersDeleted)
	assert.Equal(t, int64(2), result.ResetTokensCleared)

	assert.Equal(t, float64(1), testutil.ToFloat64(cleanupMetrics.SweepsTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(cleanupMetrics.SweepErrorsTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(cleanupMetrics.UsersDeletedTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(cleanupMetrics.ResetTokensCleared))
}

func TestMaintenanceService_RunCleanup_DeleteFails(t *testing.T) {
	svc, userRepo, cleanupMetrics := newMaintenanceService(t)

	ctx := context.Background()

	userRepo.EXPECT().DeleteExpiredUnverified(ctx, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError)

	result, err := svc.RunCleanup(ctx)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, float64(1), testutil.ToFloat64(cleanupMetrics.SweepErrorsTotal))
	userRepo.AssertNotCalled(t, "ClearExpiredPasswordResetTokens", mock.Anything, mock.Anything)
}

func TestMaintenanceService_RunCleanup_ClearTokensFails(t *testing.T) {
	svc, userRepo, cleanupMetrics := newMaintenanceService(t)

	ctx := context.Background()

	userRepo.EXPECT().DeleteExpiredUnverified(ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	userRepo.EXPECT().ClearExpiredPasswordResetTokens(ctx, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError)

	result, err := svc.RunCleanup(ctx)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, float64(1), testutil.ToFloat64(cleanupMetrics.SweepErrorsTotal))
	// A failed sweep must not report partial work as done.
	assert.Equal(t, float64(0), testutil.ToFloat64(cleanupMetrics.UsersDeletedTotal))
}
