package app

import (
	"context"
	"strings"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
	"jobport/internal/domain/application"
	"jobport/internal/domain/job"
	"jobport/internal/policy"
)

type ApplicationService struct {
	repo          application.Repository
	jobs          job.Repository
	notifications *NotificationService
	analytics     analytics.Repository
}

func NewApplicationService(repo application.Repository, jobs job.Repository, notifications *NotificationService, analytics analytics.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, notifications: notifications, analytics: analytics}
}

type ApplyInput struct {
	JobID       common.UUID
	Name        string
	Email       string
	Phone       string
	Resume      string
	CoverLetter string
}

// Apply creates an application for the acting principal. The applicant id
// is always taken from the principal, never from the request body.
func (s *ApplicationService) Apply(ctx context.Context, principal policy.Principal, input ApplyInput) (*application.Application, error) {
	if decision := policy.AuthorizeApplicationCreate(principal); !decision.Allowed {
		return nil, denyError(decision)
	}
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	posting, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByJobAndApplicant(ctx, posting.ID, principal.ID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app := application.Application{
		JobID:       posting.ID,
		ApplicantID: principal.ID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		Resume:      input.Resume,
		CoverLetter: input.CoverLetter,
		Status:      application.StatusPending,
	}
	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	s.notifications.Notify(ctx, posting.RecruiterID, "application.received", "New application for "+posting.Title, &created.ID)
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.created", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"application_id": created.ID.String(), "job_id": posting.ID.String()})})
	return created, nil
}

func (s *ApplicationService) List(ctx context.Context, principal policy.Principal) ([]application.Application, error) {
	switch policy.ApplicationScope(principal) {
	case policy.ScopeAll:
		return s.repo.ListAll(ctx, 0)
	case policy.ScopeOwnJobs:
		return s.repo.ListByRecruiter(ctx, principal.ID, 0)
	case policy.ScopeOwnApplications:
		return s.repo.ListByApplicant(ctx, principal.ID, 0)
	default:
		return nil, common.NewError(common.CodeForbidden, policy.ReasonForbidden, nil)
	}
}

func (s *ApplicationService) Get(ctx context.Context, principal policy.Principal, id common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ctx, app)
	if err != nil {
		return nil, err
	}
	if decision := policy.AuthorizeApplicationRead(principal, target); !decision.Allowed {
		return nil, denyError(decision)
	}
	return app, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, principal policy.Principal, id common.UUID, status application.Status) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	target, err := s.target(ctx, app)
	if err != nil {
		return nil, err
	}
	next := application.NormalizeStatus(status)
	if decision := policy.AuthorizeStatusUpdate(principal, target, app.Status, next); !decision.Allowed {
		return nil, denyError(decision)
	}
	if next == app.Status {
		return app, nil
	}
	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.notifications.Notify(ctx, updated.ApplicantID, "application.status_changed", "Your application status changed to "+string(next), &updated.ID)
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.status_changed", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"application_id": updated.ID.String(), "status": string(next)})})
	return updated, nil
}

func (s *ApplicationService) target(ctx context.Context, app *application.Application) (policy.ApplicationTarget, error) {
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return policy.ApplicationTarget{}, err
	}
	return policy.ApplicationTarget{ApplicantID: app.ApplicantID, JobOwnerID: posting.RecruiterID}, nil
}
