package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// StatusCount is one row of the applications-by-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// JobVolume is one row of the applications-per-job ranking.
type JobVolume struct {
	JobID uuid.UUID `json:"job_id"`
	Title string    `json:"title"`
	Count int64     `json:"count"`
}

// MonthlyCount is one row of the monthly application volume. Months with no
// applications produce no row.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// ApplicationRepository defines application persistence and aggregation
// operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	TopJobs(ctx context.Context, limit int) ([]JobVolume, error)
	MonthlyCounts(ctx context.Context, since time.Time) ([]MonthlyCount, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application.
func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// Update updates an existing application.
func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

// FindByID finds an application by ID.
func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ListByJob lists a job's applications newest first with candidate and resume
// resolved inline.
func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Resume").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Count returns the total number of applications.
func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus groups applications by status, one row per observed status.
func (r *applicationRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopJobs ranks jobs by application volume, descending, joined with the job
// title. Ties keep the store's order.
func (r *applicationRepository) TopJobs(ctx context.Context, limit int) ([]JobVolume, error) {
	var rows []JobVolume
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("applications.job_id AS job_id, jobs.title AS title, COUNT(*) AS count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Group("applications.job_id, jobs.title").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyCounts groups applications at or after since by calendar month,
// ascending. Empty months are absent from the result.
func (r *applicationRepository) MonthlyCounts(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("YEAR(applied_at) AS year, MONTH(applied_at) AS month, COUNT(*) AS count").
		Where("applied_at >= ?", since).
		Group("YEAR(applied_at), MONTH(applied_at)").
		Order("year ASC, month ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
