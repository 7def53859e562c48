package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const candidateSearchLimit = 100

// CandidateInput carries the fields of the public candidate upsert.
type CandidateInput struct {
	Email    string
	Name     string
	Phone    string
	Location string
	Profile  string
}

// CandidateService handles the candidate registry. Upsert is public; listing
// and detail require the employer role.
type CandidateService interface {
	Upsert(ctx context.Context, input CandidateInput) (candidate *model.Candidate, created bool, err error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*model.Candidate, error)
	List(ctx context.Context, actor auth.Actor, query string) ([]model.Candidate, error)
}

type candidateService struct {
	candidateRepo repository.CandidateRepository
}

// NewCandidateService creates a new candidate service.
func NewCandidateService(candidateRepo repository.CandidateRepository) CandidateService {
	return &candidateService{candidateRepo: candidateRepo}
}

// Upsert creates a candidate or updates an existing one keyed by email. On
// update only non-empty incoming fields replace existing ones, except name
// which is always taken.
func (s *candidateService) Upsert(ctx context.Context, input CandidateInput) (*model.Candidate, bool, error) {
	if input.Email == "" || input.Name == "" {
		return nil, false, apperrors.InvalidInput("name and email required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.candidateRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find candidate: %w", err)
	}

	if existing != nil {
		existing.Name = input.Name
		if input.Phone != "" {
			existing.Phone = input.Phone
		}
		if input.Location != "" {
			existing.Location = input.Location
		}
		if input.Profile != "" {
			existing.Profile = input.Profile
		}
		if err := s.candidateRepo.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("update candidate: %w", err)
		}
		return existing, false, nil
	}

	candidate := &model.Candidate{
		Email:    email,
		Name:     input.Name,
		Phone:    input.Phone,
		Location: input.Location,
		Profile:  input.Profile,
	}
	created, err := s.candidateRepo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, false, fmt.Errorf("create candidate: %w", err)
	}
	if !created {
		// Lost a race with a concurrent upsert for the same email.
		return nil, false, apperrors.Conflict("candidate already exists")
	}
	return candidate, true, nil
}

// Get returns candidate detail for employer or admin users.
func (s *candidateService) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*model.Candidate, error) {
	if err := auth.Authorize(actor, auth.RoleEmployer); err != nil {
		return nil, err
	}

	candidate, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("candidate not found")
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}
	return candidate, nil
}

// List returns candidates for employer or admin users, optionally filtered by
// a free-text query over name, email and profile.
func (s *candidateService) List(ctx context.Context, actor auth.Actor, query string) ([]model.Candidate, error) {
	if err := auth.Authorize(actor, auth.RoleEmployer); err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.Search(ctx, query, candidateSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	return candidates, nil
}
