package impl

import (
	"context"
	"testing"

	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	mockRepo "homeroom/internal/mocks/repository"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_CompleteOnboarding_AssignRoleToLocalUser(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com"}
	identity := entity.FromUser(user)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					require.NotNil(t, updated.Role)
					assert.Equal(t, entity.RoleTutor, *updated.Role)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := svc.CompleteOnboarding(ctx, &identity, &usecase.CompleteOnboardingInput{Role: "tutor"})

	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, entity.RoleTutor, *updated.Role)
}

func TestAuthService_CompleteOnboarding_CreatesFederatedUser(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	identity := entity.FederatedPending("uid-new", "new@example.com")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByFederatedUID(ctx, "uid-new").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, created *entity.User) {
					assert.Equal(t, "new@example.com", created.Email)
					assert.Equal(t, "uid-new", created.FederatedUID)
					// The provider already verified this address.
					assert.True(t, created.EmailVerified)
					require.NotNil(t, created.Role)
					assert.Equal(t, entity.RoleStudent, *created.Role)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	created, err := svc.CompleteOnboarding(ctx, &identity, &usecase.CompleteOnboardingInput{
		Role: "student",
		Name: "New Student",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)
}

func TestAuthService_CompleteOnboarding_RacedFederatedUserDegradesToUpdate(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	identity := entity.FederatedPending("uid-raced", "raced@example.com")
	existing := &entity.User{ID: uuid.New(), Email: "raced@example.com", FederatedUID: "uid-raced"}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			// Another request created the row between resolve and this call.
			mockUserRepo.EXPECT().FindByFederatedUID(ctx, "uid-raced").Return(existing, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := svc.CompleteOnboarding(ctx, &identity, &usecase.CompleteOnboardingInput{Role: "parent"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
}

func TestAuthService_CompleteOnboarding_StudentLinksParent(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	student := &entity.User{ID: uuid.New(), Email: "kid@example.com"}
	parentRole := entity.RoleParent
	parent := &entity.User{ID: uuid.New(), Email: "parent@example.com", Role: &parentRole}
	identity := entity.FromUser(student)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)
			mockUserRepo.EXPECT().FindByEmail(ctx, "parent@example.com").Return(parent, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					require.NotNil(t, updated.Role)
					assert.Equal(t, entity.RoleStudent, *updated.Role)
					require.NotNil(t, updated.ParentID)
					assert.Equal(t, parent.ID, *updated.ParentID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := svc.CompleteOnboarding(ctx, &identity, &usecase.CompleteOnboardingInput{
		Role:        "student",
		ParentEmail: "parent@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, parent.ID, *updated.ParentID)
}

func TestAuthService_CompleteOnboarding_ParentEmailMustBelongToParent(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	student := &entity.User{ID: uuid.New(), Email: "kid@example.com"}
	tutorRole := entity.RoleTutor
	notAParent := &entity.User{ID: uuid.New(), Email: "tutor@example.com", Role: &tutorRole}
	identity := entity.FromUser(student)

	linkErr := errors.Wrap(domainerrors.ErrValidationFailed, "linked account is not a parent")
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)
			mockUserRepo.EXPECT().FindByEmail(ctx, "tutor@example.com").Return(notAParent, nil)

			_ = fn(mockFactory)
		}).
		Return(linkErr)

	_, err := svc.CompleteOnboarding(ctx, &identity, &usecase.CompleteOnboardingInput{
		Role:        "student",
		ParentEmail: "tutor@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_CompleteOnboarding_InvalidRole(t *testing.T) {
	svc, _ := newAuthService(t)

	identity := entity.FederatedPending("uid-1", "user@example.com")

	_, err := svc.CompleteOnboarding(context.Background(), &identity, &usecase.CompleteOnboardingInput{Role: "admin"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAuthService_CompleteOnboarding_Unauthenticated(t *testing.T) {
	svc, _ := newAuthService(t)

	identity := entity.Unauthenticated()

	_, err := svc.CompleteOnboarding(context.Background(), &identity, &usecase.CompleteOnboardingInput{Role: "tutor"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
