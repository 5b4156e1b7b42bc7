package app

import (
	"context"
	"strings"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
	"jobport/internal/domain/company"
	"jobport/internal/domain/user"
	"jobport/internal/policy"
)

type CompanyService struct {
	repo      company.Repository
	users     user.Repository
	analytics analytics.Repository
}

func NewCompanyService(repo company.Repository, users user.Repository, analytics analytics.Repository) *CompanyService {
	return &CompanyService{repo: repo, users: users, analytics: analytics}
}

type CompanyInfoInput struct {
	Name     string
	Industry string
	Website  string
}

func (s *CompanyService) Create(ctx context.Context, principal policy.Principal, input CompanyInfoInput) (*company.Company, error) {
	if principal.Role != user.RoleRecruiter && principal.Role != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, policy.ReasonForbidden, nil)
	}
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(input.Industry) == "" {
		fields["industry"] = "industry is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	profile := company.Company{
		OwnerID:  principal.ID,
		Name:     strings.TrimSpace(input.Name),
		Industry: strings.TrimSpace(input.Industry),
		Website:  strings.TrimSpace(input.Website),
		Status:   company.StatusIncomplete,
	}
	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "company.created", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"company_id": created.ID.String()})})
	return created, nil
}

type FoundingInfoInput struct {
	FounderName  string
	FoundedYear  int
	Headquarters string
}

func (s *CompanyService) UpdateFoundingInfo(ctx context.Context, principal policy.Principal, id common.UUID, input FoundingInfoInput) (*company.Company, error) {
	profile, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if input.FoundedYear != 0 && (input.FoundedYear < 1800 || input.FoundedYear > time.Now().Year()) {
		return nil, common.NewValidationError("invalid request", map[string]string{"founded_year": "founded_year is out of range"})
	}
	profile.FounderName = strings.TrimSpace(input.FounderName)
	profile.FoundedYear = input.FoundedYear
	profile.Headquarters = strings.TrimSpace(input.Headquarters)
	return s.update(ctx, principal, *profile)
}

type SocialLinksInput struct {
	LinkedIn string
	Twitter  string
}

func (s *CompanyService) UpdateSocialLinks(ctx context.Context, principal policy.Principal, id common.UUID, input SocialLinksInput) (*company.Company, error) {
	profile, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	profile.LinkedIn = strings.TrimSpace(input.LinkedIn)
	profile.Twitter = strings.TrimSpace(input.Twitter)
	return s.update(ctx, principal, *profile)
}

type ContactInfoInput struct {
	Email   string
	Phone   string
	Address string
}

func (s *CompanyService) UpdateContactInfo(ctx context.Context, principal policy.Principal, id common.UUID, input ContactInfoInput) (*company.Company, error) {
	profile, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	profile.Email = strings.ToLower(strings.TrimSpace(input.Email))
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.Address = strings.TrimSpace(input.Address)
	return s.update(ctx, principal, *profile)
}

// Complete is the final onboarding step. It forces the profile status to
// completed and flips the owner's profile flag.
func (s *CompanyService) Complete(ctx context.Context, principal policy.Principal, id common.UUID) (*company.Company, error) {
	profile, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	profile.Status = company.StatusCompleted
	updated, err := s.update(ctx, principal, *profile)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetProfileComplete(ctx, profile.OwnerID, true); err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "company.completed", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"company_id": updated.ID.String()})})
	return updated, nil
}

func (s *CompanyService) Get(ctx context.Context, id common.UUID) (*company.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) owned(ctx context.Context, principal policy.Principal, id common.UUID) (*company.Company, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if decision := policy.AuthorizeCompanyMutation(principal, profile.OwnerID); !decision.Allowed {
		return nil, denyError(decision)
	}
	return profile, nil
}

func (s *CompanyService) update(ctx context.Context, principal policy.Principal, profile company.Company) (*company.Company, error) {
	updated, err := s.repo.Update(ctx, profile)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "company.updated", UserID: &principal.ID, Payload: analyticsPayload(ctx, map[string]string{"company_id": updated.ID.String()})})
	return updated, nil
}
