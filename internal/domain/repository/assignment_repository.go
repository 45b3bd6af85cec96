// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssignmentNotFound is returned when an assignment is not found.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository defines the standard operations for assignment persistence.
type AssignmentRepository interface {
	// FindByID retrieves a single assignment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)

	// ListByStudentID retrieves all assignments handed to a student, newest first.
	ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Assignment, error)

	// ListByTutorID retrieves all assignments created by a tutor, newest first.
	ListByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*entity.Assignment, error)

	// ListByParentID retrieves all assignments handed to students linked to the
	// given parent account, newest first.
	ListByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Assignment, error)

	// Create persists a new assignment.
	Create(ctx context.Context, assignment *entity.Assignment) error

	// Update modifies an existing assignment.
	Update(ctx context.Context, assignment *entity.Assignment) error
}
