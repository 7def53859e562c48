package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// ResumeRepository defines resume persistence operations.
type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new resume repository.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}
