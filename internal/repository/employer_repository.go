package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// EmployerRepository defines employer persistence operations.
type EmployerRepository interface {
	Create(ctx context.Context, employer *model.Employer) error
	Update(ctx context.Context, employer *model.Employer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employer, error)
	List(ctx context.Context) ([]model.Employer, error)
	Count(ctx context.Context) (int64, error)
}

type employerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository creates a new employer repository.
func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

// Create creates a new employer.
func (r *employerRepository) Create(ctx context.Context, employer *model.Employer) error {
	return r.db.WithContext(ctx).Create(employer).Error
}

// Update updates an existing employer.
func (r *employerRepository) Update(ctx context.Context, employer *model.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}

// Delete removes an employer by ID.
func (r *employerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Employer{}, "id = ?", id).Error
}

// FindByID finds an employer by ID.
func (r *employerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employer, error) {
	var employer model.Employer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employer).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

// List lists all employers, newest first.
func (r *employerRepository) List(ctx context.Context) ([]model.Employer, error) {
	var employers []model.Employer
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employers).Error; err != nil {
		return nil, err
	}
	return employers, nil
}

// Count returns the total number of employers.
func (r *employerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Employer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
