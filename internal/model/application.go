package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. The set is flat: any status may be set directly by an
// authorized actor, there is no enforced transition order.
const (
	StatusApplied   = "applied"
	StatusReviewing = "reviewing"
	StatusInterview = "interview"
	StatusOffered   = "offered"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// ApplicationStatuses lists every accepted status value.
var ApplicationStatuses = []string{
	StatusApplied,
	StatusReviewing,
	StatusInterview,
	StatusOffered,
	StatusRejected,
	StatusWithdrawn,
}

// ValidStatus reports whether s is an accepted application status.
func ValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application links a Candidate to a Job. Ownership for authorization purposes
// is the employer of the parent Job, resolved transitively.
type Application struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID  `json:"job_id" gorm:"type:char(36);not null;index"`
	CandidateID uuid.UUID  `json:"candidate_id" gorm:"type:char(36);not null;index"`
	ResumeID    *uuid.UUID `json:"resume_id,omitempty" gorm:"type:char(36)"`
	CoverLetter string     `json:"cover_letter,omitempty" gorm:"type:text"`
	Status      string     `json:"status" gorm:"size:50;not null;default:'applied';index"`
	Seen        bool       `json:"seen" gorm:"default:false"`
	AppliedAt   time.Time  `json:"applied_at" gorm:"autoCreateTime;index"`

	// Relations
	Candidate *Candidate `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	Resume    *Resume    `json:"resume,omitempty" gorm:"foreignKey:ResumeID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
