package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	"jobboard/internal/repository"
)

const (
	countsCacheKey = "admin:counts"
	countsCacheTTL = 1 * time.Minute

	defaultTopJobsLimit = 10
	monthlyWindow       = 6 // trailing calendar months, current partial month included
)

// Counts holds the per-collection totals for the admin dashboard. The four
// counts are computed independently: a near-simultaneous snapshot, not a
// transactional one.
type Counts struct {
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
	Candidates   int64 `json:"candidates"`
	Employers    int64 `json:"employers"`
}

// ReportService produces read-only aggregates for admin dashboards.
type ReportService interface {
	Counts(ctx context.Context, actor auth.Actor) (*Counts, error)
	StatusBreakdown(ctx context.Context, actor auth.Actor) ([]repository.StatusCount, error)
	TopJobs(ctx context.Context, actor auth.Actor, limit int) ([]repository.JobVolume, error)
	MonthlyVolume(ctx context.Context, actor auth.Actor) ([]repository.MonthlyCount, error)
}

type reportService struct {
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	candidateRepo   repository.CandidateRepository
	employerRepo    repository.EmployerRepository
	cache           *cache.Client
	now             func() time.Time
}

// NewReportService creates a new reporting service.
func NewReportService(
	jobRepo repository.JobRepository,
	applicationRepo repository.ApplicationRepository,
	candidateRepo repository.CandidateRepository,
	employerRepo repository.EmployerRepository,
	cache *cache.Client,
) ReportService {
	return &reportService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Counts returns the per-collection totals, read through a short-TTL cache.
func (s *reportService) Counts(ctx context.Context, actor auth.Actor) (*Counts, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, countsCacheKey); data != nil {
		var cached Counts
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	jobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	applications, err := s.applicationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	candidates, err := s.candidateRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}
	employers, err := s.employerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count employers: %w", err)
	}

	counts := &Counts{
		Jobs:         jobs,
		Applications: applications,
		Candidates:   candidates,
		Employers:    employers,
	}
	if payload, err := json.Marshal(counts); err == nil {
		_ = s.cache.Set(ctx, countsCacheKey, payload, countsCacheTTL)
	}
	return counts, nil
}

// StatusBreakdown groups applications by status, one row per observed status.
func (s *reportService) StatusBreakdown(ctx context.Context, actor auth.Actor) ([]repository.StatusCount, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}

	rows, err := s.applicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	return rows, nil
}

// TopJobs ranks jobs by application volume, descending.
func (s *reportService) TopJobs(ctx context.Context, actor auth.Actor, limit int) ([]repository.JobVolume, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopJobsLimit
	}

	rows, err := s.applicationRepo.TopJobs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top jobs: %w", err)
	}
	return rows, nil
}

// MonthlyVolume returns per-month application counts for the trailing six
// calendar months including the current partial month. Months with no
// applications are absent, not zero rows.
func (s *reportService) MonthlyVolume(ctx context.Context, actor auth.Actor) ([]repository.MonthlyCount, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}

	rows, err := s.applicationRepo.MonthlyCounts(ctx, s.monthlyCutoff())
	if err != nil {
		return nil, fmt.Errorf("monthly volume: %w", err)
	}
	return rows, nil
}

// monthlyCutoff is the first instant of the month monthlyWindow-1 months
// before the current one.
func (s *reportService) monthlyCutoff() time.Time {
	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -(monthlyWindow - 1), 0)
}
