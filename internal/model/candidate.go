package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Candidate is a job-seeker profile keyed by email. Candidates are not users;
// records are created or updated through the public upsert path.
type Candidate struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Phone     string    `json:"phone,omitempty" gorm:"size:50"`
	Location  string    `json:"location,omitempty" gorm:"size:255"`
	Profile   string    `json:"profile,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
