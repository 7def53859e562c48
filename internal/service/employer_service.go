package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// EmployerInput carries the mutable fields of an employer.
type EmployerInput struct {
	Name         string
	Website      string
	Description  string
	ContactEmail string
}

// EmployerService handles the employer registry. Reads are public, mutations
// are admin-only.
type EmployerService interface {
	Create(ctx context.Context, actor auth.Actor, input EmployerInput) (*model.Employer, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input EmployerInput) (*model.Employer, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Employer, error)
	List(ctx context.Context) ([]model.Employer, error)
}

type employerService struct {
	employerRepo repository.EmployerRepository
}

// NewEmployerService creates a new employer service.
func NewEmployerService(employerRepo repository.EmployerRepository) EmployerService {
	return &employerService{employerRepo: employerRepo}
}

func (s *employerService) Create(ctx context.Context, actor auth.Actor, input EmployerInput) (*model.Employer, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}

	employer := &model.Employer{
		Name:         input.Name,
		Website:      input.Website,
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
	}
	if err := s.employerRepo.Create(ctx, employer); err != nil {
		return nil, fmt.Errorf("create employer: %w", err)
	}
	return employer, nil
}

func (s *employerService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input EmployerInput) (*model.Employer, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}

	employer, err := s.employerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("employer not found")
		}
		return nil, fmt.Errorf("find employer: %w", err)
	}

	if input.Name != "" {
		employer.Name = input.Name
	}
	if input.Website != "" {
		employer.Website = input.Website
	}
	if input.Description != "" {
		employer.Description = input.Description
	}
	if input.ContactEmail != "" {
		employer.ContactEmail = input.ContactEmail
	}

	if err := s.employerRepo.Update(ctx, employer); err != nil {
		return nil, fmt.Errorf("update employer: %w", err)
	}
	return employer, nil
}

func (s *employerService) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.employerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("employer not found")
		}
		return fmt.Errorf("find employer: %w", err)
	}

	if err := s.employerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employer: %w", err)
	}
	return nil
}

func (s *employerService) Get(ctx context.Context, id uuid.UUID) (*model.Employer, error) {
	employer, err := s.employerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("employer not found")
		}
		return nil, fmt.Errorf("find employer: %w", err)
	}
	return employer, nil
}

func (s *employerService) List(ctx context.Context) ([]model.Employer, error) {
	employers, err := s.employerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	return employers, nil
}
