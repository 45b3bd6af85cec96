package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Sessions live until explicit logout.
// UserID is nullable: a federated session created before onboarding has no local
// user row yet and carries only the provider subject id.
type SessionModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         *uuid.UUID `gorm:"type:uuid;index"`
	TokenHash      string     `gorm:"type:varchar(64);unique;not null"`
	Mechanism      string     `gorm:"type:varchar(20);not null"`
	FederatedUID   *string    `gorm:"type:varchar(128);index"`
	FederatedEmail *string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
