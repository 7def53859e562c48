package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// JobFilter narrows a public job listing. Page is 1-based; Limit is already
// clamped by the caller.
type JobFilter struct {
	Tag        string
	Location   string
	Query      string
	ActiveOnly bool
	Page       int
	Limit      int
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindByIDWithEmployer(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, filter JobFilter) ([]model.Job, int64, error)
	Count(ctx context.Context) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update updates an existing job.
func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes a job by ID.
func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Job{}, "id = ?", id).Error
}

// FindByID finds a job by ID.
func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByIDWithEmployer finds a job by ID with its employer resolved inline.
func (r *jobRepository) FindByIDWithEmployer(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Preload("Employer").Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns a page of jobs matching the filter plus the total match count.
// The two queries are not transactional; the count is a near-simultaneous
// snapshot.
func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]model.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Job{})
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array.
		q = q.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", filter.Tag)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	offset := (filter.Page - 1) * filter.Limit
	if err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Count returns the total number of jobs.
func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
