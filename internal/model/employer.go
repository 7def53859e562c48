package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employer represents a company that posts jobs.
type Employer struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Website      string    `json:"website,omitempty" gorm:"size:255"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	ContactEmail string    `json:"contact_email,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Jobs []Job `json:"jobs,omitempty" gorm:"foreignKey:EmployerID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Employer) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
