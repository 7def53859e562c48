package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values a user account may hold.
const (
	RoleAdmin    = "admin"
	RoleEmployer = "employer"
)

// User represents a login-capable account. Candidates do not hold accounts;
// only admins and employer staff authenticate.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"size:50;not null;default:'employer';index"`
	Name         string     `json:"name" gorm:"size:255"`
	EmployerID   *uuid.UUID `json:"employer_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
