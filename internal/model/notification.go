package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is an in-app message for a user. Created by admins or emitted
// by workflow events; only the recipient or an admin may mark it read.
type Notification struct {
	ID        uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID         `json:"user_id" gorm:"type:char(36);not null;index"`
	Title     string            `json:"title" gorm:"size:255;not null"`
	Body      string            `json:"body,omitempty" gorm:"type:text"`
	Data      map[string]string `json:"data,omitempty" gorm:"serializer:json"`
	Read      bool              `json:"read" gorm:"default:false"`
	CreatedAt time.Time         `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
