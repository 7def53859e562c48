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

// ApplyInput carries an application submission. Submission is public:
// candidates do not hold accounts, so the endpoint deliberately requires no
// authentication.
type ApplyInput struct {
	JobID       uuid.UUID
	Candidate   CandidateInput
	ResumeID    *uuid.UUID
	Resume      *ResumeInput
	CoverLetter string
}

// ResumeInput carries an inline resume submitted with an application, stored
// as a new record for the applying candidate.
type ResumeInput struct {
	Filename string
	Content  string
}

// ApplicationService owns the application lifecycle: submission, listing for
// the owning employer, and status transitions.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*model.Application, error)
	ListForJob(ctx context.Context, actor auth.Actor, jobID uuid.UUID) ([]model.Application, error)
	SetStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*model.Application, error)
	Close()
}

type applicationEvent struct {
	jobID         uuid.UUID
	jobTitle      string
	employerID    uuid.UUID
	applicationID uuid.UUID
	candidateName string
}

type applicationService struct {
	applicationRepo  repository.ApplicationRepository
	jobRepo          repository.JobRepository
	candidateRepo    repository.CandidateRepository
	resumeRepo       repository.ResumeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	// Channel for async notification fan-out
	eventChannel chan applicationEvent
}

// NewApplicationService creates a new application service and starts its
// notification worker.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	candidateRepo repository.CandidateRepository,
	resumeRepo repository.ResumeRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) ApplicationService {
	service := &applicationService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		candidateRepo:    candidateRepo,
		resumeRepo:       resumeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		eventChannel:     make(chan applicationEvent, 100),
	}

	// Start async notification worker
	go service.notifyWorker(context.Background())

	return service
}

// notifyWorker fans application events out to the owning employer's users as
// notification records. Delivery is fire-and-forget: failures are dropped,
// never surfaced to the applicant.
func (s *applicationService) notifyWorker(ctx context.Context) {
	for event := range s.eventChannel {
		users, err := s.userRepo.ListByEmployer(ctx, event.employerID)
		if err != nil {
			continue
		}
		for _, user := range users {
			_ = s.notificationRepo.Create(ctx, &model.Notification{
				UserID: user.ID,
				Title:  "New application received",
				Body:   fmt.Sprintf("%s applied to %s", event.candidateName, event.jobTitle),
				Data: map[string]string{
					"job_id":         event.jobID.String(),
					"application_id": event.applicationID.String(),
				},
			})
		}
	}
}

// Close stops the notification worker.
func (s *applicationService) Close() {
	close(s.eventChannel)
}

// Apply submits an application to a job. The candidate is looked up by email
// and created when absent; an existing candidate is reused as-is with no
// field updates. Duplicate applications for the same job are allowed.
func (s *applicationService) Apply(ctx context.Context, input ApplyInput) (*model.Application, error) {
	if input.JobID == uuid.Nil || input.Candidate.Email == "" {
		return nil, apperrors.InvalidInput("jobId and candidate email required")
	}

	job, err := s.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	candidate, err := s.findOrCreateCandidate(ctx, input.Candidate)
	if err != nil {
		return nil, err
	}

	resumeID, err := s.resolveResume(ctx, candidate.ID, input)
	if err != nil {
		return nil, err
	}

	application := &model.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		ResumeID:    resumeID,
		CoverLetter: input.CoverLetter,
		Status:      model.StatusApplied,
		Seen:        false,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	// Fire-and-forget; a full channel drops the event rather than blocking
	// the request.
	select {
	case s.eventChannel <- applicationEvent{
		jobID:         job.ID,
		jobTitle:      job.Title,
		employerID:    job.EmployerID,
		applicationID: application.ID,
		candidateName: candidate.Name,
	}:
	default:
	}

	return application, nil
}

// resolveResume returns the resume id to attach: a referenced existing resume
// (which must exist), a freshly stored inline one, or nil.
func (s *applicationService) resolveResume(ctx context.Context, candidateID uuid.UUID, input ApplyInput) (*uuid.UUID, error) {
	if input.ResumeID != nil {
		if _, err := s.resumeRepo.FindByID(ctx, *input.ResumeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("resume not found")
			}
			return nil, fmt.Errorf("find resume: %w", err)
		}
		return input.ResumeID, nil
	}

	if input.Resume == nil {
		return nil, nil
	}
	resume := &model.Resume{
		CandidateID: candidateID,
		Filename:    input.Resume.Filename,
		Content:     input.Resume.Content,
	}
	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return &resume.ID, nil
}

func (s *applicationService) findOrCreateCandidate(ctx context.Context, input CandidateInput) (*model.Candidate, error) {
	existing, err := s.candidateRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find candidate: %w", err)
	}

	candidate := &model.Candidate{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Location: input.Location,
		Profile:  input.Profile,
	}
	created, err := s.candidateRepo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	if !created {
		// A concurrent apply created the candidate first; reuse it.
		return s.candidateRepo.FindByEmail(ctx, input.Email)
	}
	return candidate, nil
}

// ListForJob lists a job's applications for the owning employer or an admin,
// newest first, with candidate and resume resolved inline.
func (s *applicationService) ListForJob(ctx context.Context, actor auth.Actor, jobID uuid.UUID) ([]model.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := auth.AuthorizeOwner(actor, job.EmployerID); err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

// SetStatus overwrites an application's status. Ownership is resolved
// transitively through the parent job's employer. The status set is flat: any
// accepted status may follow any other, last write wins.
func (s *applicationService) SetStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, apperrors.InvalidInput("invalid status")
	}

	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := auth.AuthorizeOwner(actor, job.EmployerID); err != nil {
		return nil, err
	}

	application.Status = status
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return application, nil
}
