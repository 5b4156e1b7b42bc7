package app

import (
	"context"
	"strings"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
	"jobport/internal/domain/job"
	"jobport/internal/domain/user"
	"jobport/internal/policy"
)

type JobService struct {
	repo      job.Repository
	analytics analytics.Repository
}

func NewJobService(repo job.Repository, analytics analytics.Repository) *JobService {
	return &JobService{repo: repo, analytics: analytics}
}

func (s *JobService) Create(ctx context.Context, principal policy.Principal, posting job.Job) (*job.Job, error) {
	if principal.Role != user.RoleRecruiter && principal.Role != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, policy.ReasonForbidden, nil)
	}
	if err := validateJob(posting); err != nil {
		return nil, err
	}
	posting.RecruiterID = principal.ID
	created, err := s.repo.Create(ctx, posting)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.created", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"job_id": created.ID.String()})})
	return created, nil
}

func (s *JobService) Update(ctx context.Context, principal policy.Principal, posting job.Job) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, posting.ID)
	if err != nil {
		return nil, err
	}
	if decision := policy.AuthorizeJobMutation(principal, current.RecruiterID); !decision.Allowed {
		return nil, denyError(decision)
	}
	if err := validateJob(posting); err != nil {
		return nil, err
	}
	posting.RecruiterID = current.RecruiterID
	updated, err := s.repo.Update(ctx, posting)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.updated", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"job_id": updated.ID.String()})})
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, principal policy.Principal, id common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if decision := policy.AuthorizeJobMutation(principal, current.RecruiterID); !decision.Allowed {
		return denyError(decision)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.deleted", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"job_id": id.String()})})
	return nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *JobService) ListByRecruiter(ctx context.Context, principal policy.Principal) ([]job.Job, error) {
	return s.repo.ListByRecruiter(ctx, principal.ID)
}

func validateJob(posting job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(posting.Title) == "" {
		fields["title"] = "title is required"
	}
	if posting.MinSalary < 0 || posting.MaxSalary < 0 {
		fields["min_salary"] = "salary must not be negative"
	}
	if posting.MaxSalary > 0 && posting.MinSalary > posting.MaxSalary {
		fields["max_salary"] = "max_salary must be >= min_salary"
	}
	if posting.Vacancies < 0 {
		fields["vacancies"] = "vacancies must not be negative"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
