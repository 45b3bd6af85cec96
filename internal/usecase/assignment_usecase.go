package usecase

import (
	"context"
	"time"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAssignmentInput defines the data a tutor supplies when handing out work.
type CreateAssignmentInput struct {
	StudentID    uuid.UUID
	Title        string
	Instructions string
	DueAt        *time.Time
}

// SubmitAssignmentInput identifies the assignment a student is handing in.
type SubmitAssignmentInput struct {
	AssignmentID uuid.UUID
}

// GradeAssignmentInput carries the grade a tutor records for a submission.
type GradeAssignmentInput struct {
	AssignmentID uuid.UUID
	Grade        string
}

// AssignmentUsecase defines assignment-related business operations.
// Every operation takes the acting user so ownership can be enforced:
// tutors only touch assignments they created, students only their own.
type AssignmentUsecase interface {
	CreateAssignment(ctx context.Context, actor *entity.User, input *CreateAssignmentInput) (*entity.Assignment, error)
	ListAssignments(ctx context.Context, actor *entity.User) ([]*entity.Assignment, error)
	GetAssignment(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Assignment, error)
	SubmitAssignment(ctx context.Context, actor *entity.User, input *SubmitAssignmentInput) (*entity.Assignment, error)
	GradeAssignment(ctx context.Context, actor *entity.User, input *GradeAssignmentInput) (*entity.Assignment, error)
}
