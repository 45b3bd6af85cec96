// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	"homeroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface using GORM.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// FindByID retrieves a single assignment by its unique ID.
func (repo *assignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	var assignmentM model.AssignmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by id")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// ListByStudentID retrieves all assignments handed to a student, newest first.
func (repo *assignmentRepository) ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Assignment, error) {
	var models []model.AssignmentModel
	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assignments by student id")
	}

	assignments := make([]*entity.Assignment, 0, len(models))
	for i := range models {
		assignments = append(assignments, toAssignmentDomain(&models[i]))
	}

	return assignments, nil
}

// ListByTutorID retrieves all assignments created by a tutor, newest first.
func (repo *assignmentRepository) ListByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*entity.Assignment, error) {
	var models []model.AssignmentModel
	if err := repo.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assignments by tutor id")
	}

	assignments := make([]*entity.Assignment, 0, len(models))
	for i := range models {
		assignments = append(assignments, toAssignmentDomain(&models[i]))
	}

	return assignments, nil
}

// ListByParentID retrieves all assignments handed to students linked to the
// given parent account, newest first.
func (repo *assignmentRepository) ListByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Assignment, error) {
	var models []model.AssignmentModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = assignments.student_id").
		Where("users.parent_id = ?", parentID).
		Order("assignments.created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assignments by parent id")
	}

	assignments := make([]*entity.Assignment, 0, len(models))
	for i := range models {
		assignments = append(assignments, toAssignmentDomain(&models[i]))
	}

	return assignments, nil
}

// Create persists a new assignment.
func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("assignment references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.ID = assignmentM.ID
	assignment.CreatedAt = assignmentM.CreatedAt
	assignment.UpdatedAt = assignmentM.UpdatedAt

	return nil
}

// Update modifies an existing assignment.
func (repo *assignmentRepository) Update(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Save(assignmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update assignment")
	}

	assignment.UpdatedAt = assignmentM.UpdatedAt

	return nil
}
