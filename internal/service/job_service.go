package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const (
	jobCacheTTL     = 5 * time.Minute
	defaultJobLimit = 20
	maxJobLimit     = 100
)

// JobInput carries the client-settable fields of a job. The employer is never
// client-supplied; it comes from the acting user's affiliation.
type JobInput struct {
	Title       string
	Slug        string
	Description string
	Location    string
	Type        string
	SalaryRange string
	Tags        []string
	IsActive    *bool
	ClosedAt    *time.Time
}

// JobPage is the paginated listing envelope.
type JobPage struct {
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
	Items []model.Job `json:"items"`
}

// JobService handles job registry operations.
type JobService interface {
	Create(ctx context.Context, actor auth.Actor, input JobInput) (*model.Job, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input JobInput) (*model.Job, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, tag, location, query string, page, limit int) (*JobPage, error)
}

type jobService struct {
	jobRepo repository.JobRepository
	cache   *cache.Client
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{jobRepo: jobRepo, cache: cache}
}

func jobCacheKey(id uuid.UUID) string {
	return "job:" + id.String()
}

// Create posts a job owned by the actor's employer. An employer-role user
// without an employer affiliation cannot post.
func (s *jobService) Create(ctx context.Context, actor auth.Actor, input JobInput) (*model.Job, error) {
	if err := auth.Authorize(actor, auth.RoleEmployer); err != nil {
		return nil, err
	}
	if actor.EmployerID == nil {
		return nil, apperrors.ErrForbidden
	}
	if input.Title == "" {
		return nil, apperrors.InvalidInput("title required")
	}

	jobType := input.Type
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}

	job := &model.Job{
		EmployerID:  *actor.EmployerID,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Location:    input.Location,
		Type:        jobType,
		SalaryRange: input.SalaryRange,
		Tags:        input.Tags,
		IsActive:    true,
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update patches a job. Only the owning employer's users or an admin may
// mutate; only non-zero incoming fields replace existing ones.
func (s *jobService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input JobInput) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := auth.AuthorizeOwner(actor, job.EmployerID); err != nil {
		return nil, err
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Slug != "" {
		job.Slug = input.Slug
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.Type != "" {
		job.Type = input.Type
	}
	if input.SalaryRange != "" {
		job.SalaryRange = input.SalaryRange
	}
	if input.Tags != nil {
		job.Tags = input.Tags
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}
	if input.ClosedAt != nil {
		job.ClosedAt = input.ClosedAt
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	_ = s.cache.Delete(ctx, jobCacheKey(job.ID))
	return job, nil
}

// Delete removes a job. Only the owning employer's users or an admin may
// delete.
func (s *jobService) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("job not found")
		}
		return fmt.Errorf("find job: %w", err)
	}

	if err := auth.AuthorizeOwner(actor, job.EmployerID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	_ = s.cache.Delete(ctx, jobCacheKey(id))
	return nil
}

// Get returns a job with its employer resolved, read through the cache.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, jobCacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.jobRepo.FindByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, jobCacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

// List returns a public page of active jobs. Page is floored at 1 and limit
// clamped to 100 at the request boundary, not in the store.
func (s *jobService) List(ctx context.Context, tag, location, query string, page, limit int) (*JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultJobLimit
	}
	if limit > maxJobLimit {
		limit = maxJobLimit
	}

	jobs, total, err := s.jobRepo.List(ctx, repository.JobFilter{
		Tag:        tag,
		Location:   location,
		Query:      query,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}

	return &JobPage{Page: page, Limit: limit, Total: total, Items: jobs}, nil
}
