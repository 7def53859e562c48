package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

type applicationMocks struct {
	applications  *MockApplicationRepository
	jobs          *MockJobRepository
	candidates    *MockCandidateRepository
	resumes       *MockResumeRepository
	users         *MockUserRepository
	notifications *MockNotificationRepository
}

func newApplicationService(t *testing.T) (ApplicationService, applicationMocks) {
	t.Helper()
	m := applicationMocks{
		applications:  new(MockApplicationRepository),
		jobs:          new(MockJobRepository),
		candidates:    new(MockCandidateRepository),
		resumes:       new(MockResumeRepository),
		users:         new(MockUserRepository),
		notifications: new(MockNotificationRepository),
	}
	// The notification worker runs asynchronously; its calls are tolerated
	// but not required within a test's lifetime.
	m.users.On("ListByEmployer", mock.Anything, mock.Anything).Return([]model.User{}, nil).Maybe()
	m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewApplicationService(m.applications, m.jobs, m.candidates, m.resumes, m.users, m.notifications)
	t.Cleanup(svc.Close)
	return svc, m
}

func employerActor(employerID uuid.UUID) auth.Actor {
	return auth.Actor{UserID: uuid.New(), Role: auth.RoleEmployer, EmployerID: &employerID}
}

func adminActor() auth.Actor {
	return auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}
}

func TestApplicationService_Apply(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	job := &model.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer"}

	t.Run("existing candidate is reused without field updates", func(t *testing.T) {
		svc, m := newApplicationService(t)
		existing := &model.Candidate{ID: uuid.New(), Email: "a@x.com", Name: "A"}

		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.candidates.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		m.applications.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		app, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     jobID,
			Candidate: CandidateInput{Email: "a@x.com", Name: "Someone Else"},
		})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, app.CandidateID)
		assert.Equal(t, model.StatusApplied, app.Status)
		assert.False(t, app.Seen)
		m.candidates.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
		m.candidates.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("new candidate email creates exactly one candidate", func(t *testing.T) {
		svc, m := newApplicationService(t)

		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.candidates.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
		m.candidates.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*model.Candidate")).Return(true, nil).Once()
		m.applications.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		app, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     jobID,
			Candidate: CandidateInput{Email: "new@x.com", Name: "B"},
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApplied, app.Status)
		m.candidates.AssertExpectations(t)
	})

	t.Run("duplicate application for the same job is allowed", func(t *testing.T) {
		svc, m := newApplicationService(t)
		existing := &model.Candidate{ID: uuid.New(), Email: "a@x.com", Name: "A"}

		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.candidates.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		m.applications.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil).Twice()

		input := ApplyInput{JobID: jobID, Candidate: CandidateInput{Email: "a@x.com", Name: "A"}}
		first, err := svc.Apply(context.Background(), input)
		assert.NoError(t, err)
		second, err := svc.Apply(context.Background(), input)
		assert.NoError(t, err)

		assert.Equal(t, first.CandidateID, second.CandidateID)
		m.applications.AssertExpectations(t)
	})

	t.Run("missing job id is invalid input", func(t *testing.T) {
		svc, _ := newApplicationService(t)
		_, err := svc.Apply(context.Background(), ApplyInput{Candidate: CandidateInput{Email: "a@x.com"}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("missing candidate email is invalid input", func(t *testing.T) {
		svc, _ := newApplicationService(t)
		_, err := svc.Apply(context.Background(), ApplyInput{JobID: jobID})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		svc, m := newApplicationService(t)
		missing := uuid.New()
		m.jobs.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     missing,
			Candidate: CandidateInput{Email: "a@x.com"},
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("referenced resume must exist", func(t *testing.T) {
		svc, m := newApplicationService(t)
		existing := &model.Candidate{ID: uuid.New(), Email: "a@x.com"}
		resumeID := uuid.New()

		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.candidates.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		m.resumes.On("FindByID", mock.Anything, resumeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     jobID,
			Candidate: CandidateInput{Email: "a@x.com"},
			ResumeID:  &resumeID,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("inline resume is stored for the candidate", func(t *testing.T) {
		svc, m := newApplicationService(t)
		existing := &model.Candidate{ID: uuid.New(), Email: "a@x.com"}

		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.candidates.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		m.resumes.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Resume) bool {
			return r.CandidateID == existing.ID && r.Filename == "cv.pdf"
		})).Return(nil)
		m.applications.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		app, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     jobID,
			Candidate: CandidateInput{Email: "a@x.com"},
			Resume:    &ResumeInput{Filename: "cv.pdf", Content: "Go since 2015."},
		})
		assert.NoError(t, err)
		assert.NotNil(t, app.ResumeID)
		m.resumes.AssertExpectations(t)
	})

	t.Run("lost creation race falls back to the winner's record", func(t *testing.T) {
		svc, m := newApplicationService(t)
		winner := &model.Candidate{ID: uuid.New(), Email: "race@x.com"}

		m.candidates.On("FindByEmail", mock.Anything, "race@x.com").Return(nil, gorm.ErrRecordNotFound).Once()
		m.candidates.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*model.Candidate")).Return(false, nil)
		m.candidates.On("FindByEmail", mock.Anything, "race@x.com").Return(winner, nil).Once()
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.applications.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		app, err := svc.Apply(context.Background(), ApplyInput{
			JobID:     jobID,
			Candidate: CandidateInput{Email: "race@x.com"},
		})
		assert.NoError(t, err)
		assert.Equal(t, winner.ID, app.CandidateID)
	})
}

func TestApplicationService_SetStatus(t *testing.T) {
	employerID := uuid.New()
	otherEmployerID := uuid.New()
	jobID := uuid.New()
	appID := uuid.New()
	job := &model.Job{ID: jobID, EmployerID: employerID}
	application := func() *model.Application {
		return &model.Application{ID: appID, JobID: jobID, Status: model.StatusApplied}
	}

	t.Run("owner may set any status", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.applications.On("FindByID", mock.Anything, appID).Return(application(), nil)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.applications.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		updated, err := svc.SetStatus(context.Background(), employerActor(employerID), appID, model.StatusOffered)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusOffered, updated.Status)
	})

	t.Run("no transition order is enforced", func(t *testing.T) {
		svc, m := newApplicationService(t)
		app := application()
		app.Status = model.StatusOffered
		m.applications.On("FindByID", mock.Anything, appID).Return(app, nil)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.applications.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		updated, err := svc.SetStatus(context.Background(), employerActor(employerID), appID, model.StatusWithdrawn)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusWithdrawn, updated.Status)
	})

	t.Run("other employer is forbidden", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.applications.On("FindByID", mock.Anything, appID).Return(application(), nil)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)

		_, err := svc.SetStatus(context.Background(), employerActor(otherEmployerID), appID, model.StatusRejected)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.applications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin passes the ownership check", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.applications.On("FindByID", mock.Anything, appID).Return(application(), nil)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.applications.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

		updated, err := svc.SetStatus(context.Background(), adminActor(), appID, model.StatusReviewing)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusReviewing, updated.Status)
	})

	t.Run("unknown application is not found", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.applications.On("FindByID", mock.Anything, appID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.SetStatus(context.Background(), adminActor(), appID, model.StatusReviewing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("dangling parent job is not found", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.applications.On("FindByID", mock.Anything, appID).Return(application(), nil)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.SetStatus(context.Background(), adminActor(), appID, model.StatusReviewing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown status is invalid input", func(t *testing.T) {
		svc, _ := newApplicationService(t)
		_, err := svc.SetStatus(context.Background(), adminActor(), appID, "archived")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestApplicationService_ListForJob(t *testing.T) {
	employerID := uuid.New()
	otherEmployerID := uuid.New()
	jobID := uuid.New()
	job := &model.Job{ID: jobID, EmployerID: employerID}

	t.Run("owner sees the job's applications", func(t *testing.T) {
		svc, m := newApplicationService(t)
		expected := []model.Application{
			{ID: uuid.New(), JobID: jobID, Candidate: &model.Candidate{Email: "a@x.com"}},
			{ID: uuid.New(), JobID: jobID},
		}
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)
		m.applications.On("ListByJob", mock.Anything, jobID).Return(expected, nil)

		apps, err := svc.ListForJob(context.Background(), employerActor(employerID), jobID)
		assert.NoError(t, err)
		assert.Equal(t, expected, apps)
	})

	t.Run("other employer is forbidden", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.jobs.On("FindByID", mock.Anything, jobID).Return(job, nil)

		_, err := svc.ListForJob(context.Background(), employerActor(otherEmployerID), jobID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.applications.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		svc, m := newApplicationService(t)
		missing := uuid.New()
		m.jobs.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ListForJob(context.Background(), adminActor(), missing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
