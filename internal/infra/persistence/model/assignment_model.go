package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel mirrors the 'assignments' table.
type AssignmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TutorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Instructions string    `gorm:"type:text"`
	DueAt        *time.Time
	Status       string `gorm:"type:varchar(20);not null;default:'assigned'"`
	Grade        string `gorm:"type:varchar(20)"`
	SubmittedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "assignments"
}
