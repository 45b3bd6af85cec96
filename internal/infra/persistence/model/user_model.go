// Package model contains the GORM persistence models, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string     `gorm:"type:varchar(255);unique;not null"`
	Name          string     `gorm:"type:varchar(100)"`
	PhotoURL      string     `gorm:"type:text"`
	PasswordHash  string     `gorm:"type:varchar(255)"`
	EmailVerified bool       `gorm:"not null;default:false"`
	Role          *string    `gorm:"type:varchar(20)"`
	ParentID      *uuid.UUID `gorm:"type:uuid;index"`
	FederatedUID  *string    `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	VerificationToken        *string `gorm:"type:varchar(64);index"`
	VerificationTokenExpiry  *time.Time
	PasswordResetToken       *string `gorm:"type:varchar(64);index"`
	PasswordResetTokenExpiry *time.Time

	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
