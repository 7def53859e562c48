package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job types accepted on posting.
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
	JobTypeRemote   = "remote"
)

// Job is a posting owned by an Employer. EmployerID is always derived from the
// posting user's affiliation, never taken from the request body.
type Job struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EmployerID  uuid.UUID  `json:"employer_id" gorm:"type:char(36);not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null;index"`
	Slug        string     `json:"slug,omitempty" gorm:"size:255;index"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Location    string     `json:"location,omitempty" gorm:"size:255;index"`
	Type        string     `json:"type" gorm:"size:50;default:'full-time'"`
	SalaryRange string     `json:"salary_range,omitempty" gorm:"size:255"`
	Tags        []string   `json:"tags,omitempty" gorm:"serializer:json"`
	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`

	// Relations
	Employer *Employer `json:"employer,omitempty" gorm:"foreignKey:EmployerID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
