// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus tracks the lifecycle of an assignment.
type AssignmentStatus string

const (
	// AssignmentAssigned is the initial state after a tutor creates the assignment.
	AssignmentAssigned AssignmentStatus = "assigned"
	// AssignmentSubmitted is set when the student hands in their work.
	AssignmentSubmitted AssignmentStatus = "submitted"
	// AssignmentGraded is set when the tutor records a grade.
	AssignmentGraded AssignmentStatus = "graded"
)

// Assignment is a unit of work a tutor hands to a student.
type Assignment struct {
	ID           uuid.UUID
	TutorID      uuid.UUID
	StudentID    uuid.UUID
	Title        string
	Instructions string
	DueAt        *time.Time
	Status       AssignmentStatus
	Grade        string // Free-form grade recorded by the tutor, empty until graded.
	SubmittedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
