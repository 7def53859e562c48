package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume stores an uploaded resume reference for a candidate. Filename points
// at external storage; Content holds any parsed text.
type Resume struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CandidateID uuid.UUID `json:"candidate_id" gorm:"type:char(36);not null;index"`
	Filename    string    `json:"filename,omitempty" gorm:"size:512"`
	Content     string    `json:"content,omitempty" gorm:"type:text"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
