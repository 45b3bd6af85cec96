package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "homeroom/internal/delivery/context"
	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assignmentService implements the AssignmentUsecase interface.
type assignmentService struct {
	txManager      repository.TransactionManager
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// AssignmentServiceParams holds dependencies for assignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssignmentRepo repository.AssignmentRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		txManager:      params.TxManager,
		assignmentRepo: params.AssignmentRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAssignment lets a tutor hand out work to a student.
func (srv *assignmentService) CreateAssignment(ctx context.Context, actor *entity.User, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	if !actorHasRole(actor, entity.RoleTutor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only tutors create assignments")
	}

	student, err := srv.userRepo.FindByID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "student not found")
		}

		return nil, errors.Wrap(err, "failed to load student for assignment")
	}
	if !actorHasRole(student, entity.RoleStudent) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "assignment target must be a student")
	}

	assignment := &entity.Assignment{
		TutorID:      actor.ID,
		StudentID:    student.ID,
		Title:        input.Title,
		Instructions: input.Instructions,
		DueAt:        input.DueAt,
		Status:       entity.AssignmentAssigned,
	}

	if err := srv.assignmentRepo.Create(ctx, assignment); err != nil {
		srv.log(ctx).Error("Failed to create assignment", slog.Any("tutorID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create assignment")
	}

	srv.log(ctx).Debug("Assignment created", slog.Any("assignmentID", assignment.ID), slog.Any("tutorID", actor.ID))

	return assignment, nil
}

// ListAssignments returns the assignments visible to the actor: created for
// tutors, received for students, the linked students' work for parents.
func (srv *assignmentService) ListAssignments(ctx context.Context, actor *entity.User) ([]*entity.Assignment, error) {
	switch {
	case actorHasRole(actor, entity.RoleTutor):
		assignments, err := srv.assignmentRepo.ListByTutorID(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list assignments by tutor")
		}

		return assignments, nil
	case actorHasRole(actor, entity.RoleStudent):
		assignments, err := srv.assignmentRepo.ListByStudentID(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list assignments by student")
		}

		return assignments, nil
	case actorHasRole(actor, entity.RoleParent):
		assignments, err := srv.assignmentRepo.ListByParentID(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list assignments by parent")
		}

		return assignments, nil
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "role cannot list assignments")
	}
}

// GetAssignment returns one assignment, enforcing that the actor is a party to it.
func (srv *assignmentService) GetAssignment(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Assignment, error) {
	assignment, err := srv.loadOwnedAssignment(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// SubmitAssignment lets the assigned student hand in their work.
func (srv *assignmentService) SubmitAssignment(ctx context.Context, actor *entity.User, input *usecase.SubmitAssignmentInput) (*entity.Assignment, error) {
	if !actorHasRole(actor, entity.RoleStudent) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only students submit assignments")
	}

	var submitted *entity.Assignment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.AssignmentRepo()

		assignment, findErr := assignmentRepo.FindByID(ctx, input.AssignmentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAssignmentNotFound) {
				return errors.Wrap(domainerrors.ErrAssignmentNotFound, "assignment not found")
			}

			return errors.Wrap(findErr, "failed to load assignment for submission")
		}

		if assignment.StudentID != actor.ID {
			return errors.Wrap(domainerrors.ErrAssignmentOwnershipViolation, "assignment belongs to another student")
		}
		if assignment.Status == entity.AssignmentGraded {
			return errors.Wrap(domainerrors.ErrConflict, "assignment already graded")
		}

		now := time.Now()
		assignment.Status = entity.AssignmentSubmitted
		assignment.SubmittedAt = &now

		if updateErr := assignmentRepo.Update(ctx, assignment); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark assignment submitted")
		}
		submitted = assignment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit assignment", slog.Any("assignmentID", input.AssignmentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute submission transaction")
	}

	return submitted, nil
}

// GradeAssignment lets the owning tutor record a grade for a submission.
func (srv *assignmentService) GradeAssignment(ctx context.Context, actor *entity.User, input *usecase.GradeAssignmentInput) (*entity.Assignment, error) {
	if !actorHasRole(actor, entity.RoleTutor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only tutors grade assignments")
	}

	var graded *entity.Assignment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.AssignmentRepo()

		assignment, findErr := assignmentRepo.FindByID(ctx, input.AssignmentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAssignmentNotFound) {
				return errors.Wrap(domainerrors.ErrAssignmentNotFound, "assignment not found")
			}

			return errors.Wrap(findErr, "failed to load assignment for grading")
		}

		if assignment.TutorID != actor.ID {
			return errors.Wrap(domainerrors.ErrAssignmentOwnershipViolation, "assignment belongs to another tutor")
		}
		if assignment.Status != entity.AssignmentSubmitted {
			return errors.Wrap(domainerrors.ErrConflict, "assignment has not been submitted")
		}

		assignment.Status = entity.AssignmentGraded
		assignment.Grade = input.Grade

		if updateErr := assignmentRepo.Update(ctx, assignment); updateErr != nil {
			return errors.Wrap(updateErr, "failed to record grade")
		}
		graded = assignment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to grade assignment", slog.Any("assignmentID", input.AssignmentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute grading transaction")
	}

	return graded, nil
}

// loadOwnedAssignment loads an assignment and checks the actor is a party to
// it: its tutor, its student, or the student's linked parent.
func (srv *assignmentService) loadOwnedAssignment(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Assignment, error) {
	assignment, err := srv.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAssignmentNotFound, "assignment not found")
		}

		return nil, errors.Wrap(err, "failed to load assignment")
	}

	if assignment.TutorID != actor.ID && assignment.StudentID != actor.ID && !srv.isParentOf(ctx, actor, assignment.StudentID) {
		return nil, errors.Wrap(domainerrors.ErrAssignmentOwnershipViolation, "actor is not a party to this assignment")
	}

	return assignment, nil
}

// isParentOf reports whether the actor is the linked parent of the given student.
func (srv *assignmentService) isParentOf(ctx context.Context, actor *entity.User, studentID uuid.UUID) bool {
	if !actorHasRole(actor, entity.RoleParent) {
		return false
	}

	student, err := srv.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return false
	}

	return student.ParentID != nil && *student.ParentID == actor.ID
}

func actorHasRole(user *entity.User, role entity.Role) bool {
	return user != nil && user.Role != nil && *user.Role == role
}
