package app

import (
	"context"

	"jobport/internal/common"
	"jobport/internal/domain/application"
	"jobport/internal/domain/job"
	"jobport/internal/domain/user"
	"jobport/internal/policy"
)

type StatsService struct {
	users        user.Repository
	jobs         job.Repository
	applications application.Repository
}

func NewStatsService(users user.Repository, jobs job.Repository, applications application.Repository) *StatsService {
	return &StatsService{users: users, jobs: jobs, applications: applications}
}

type StatCard struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
}

const recentApplicationsLimit = 5

func (s *StatsService) Dashboard(ctx context.Context, principal policy.Principal) ([]StatCard, error) {
	switch principal.Role {
	case user.RoleAdmin:
		return s.adminDashboard(ctx)
	case user.RoleRecruiter:
		return s.recruiterDashboard(ctx, principal.ID)
	case user.RoleJobSeeker:
		return s.jobSeekerDashboard(ctx, principal.ID)
	default:
		return nil, common.NewError(common.CodeForbidden, policy.ReasonForbidden, nil)
	}
}

func (s *StatsService) adminDashboard(ctx context.Context) ([]StatCard, error) {
	totalJobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applications.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Total Jobs", Value: totalJobs, Icon: "applied"},
		{Title: "Total Users", Value: totalUsers, Icon: "favorite"},
		{Title: "Total Applications", Value: totalApplications, Icon: "alert"},
	}, nil
}

func (s *StatsService) recruiterDashboard(ctx context.Context, recruiterID common.UUID) ([]StatCard, error) {
	jobsPosted, err := s.jobs.CountByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	applicants, err := s.applications.CountByRecruiter(ctx, recruiterID, "")
	if err != nil {
		return nil, err
	}
	pending, err := s.applications.CountByRecruiter(ctx, recruiterID, application.StatusPending)
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Jobs Posted", Value: jobsPosted, Icon: "applied"},
		{Title: "Applicants", Value: applicants, Icon: "favorite"},
		{Title: "Pending Applications", Value: pending, Icon: "alert"},
	}, nil
}

func (s *StatsService) jobSeekerDashboard(ctx context.Context, applicantID common.UUID) ([]StatCard, error) {
	applied, err := s.applications.CountByApplicant(ctx, applicantID, "")
	if err != nil {
		return nil, err
	}
	accepted, err := s.applications.CountByApplicant(ctx, applicantID, application.StatusAccepted)
	if err != nil {
		return nil, err
	}
	rejected, err := s.applications.CountByApplicant(ctx, applicantID, application.StatusRejected)
	if err != nil {
		return nil, err
	}
	pending, err := s.applications.CountByApplicant(ctx, applicantID, application.StatusPending)
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Jobs Applied", Value: applied, Icon: "applied"},
		{Title: "Accepted", Value: accepted, Icon: "favorite"},
		{Title: "Rejected", Value: rejected, Icon: "alert"},
		{Title: "Pending", Value: pending, Icon: "applied"},
	}, nil
}

func (s *StatsService) RecentApplications(ctx context.Context, principal policy.Principal) ([]application.Application, error) {
	switch policy.ApplicationScope(principal) {
	case policy.ScopeAll:
		return s.applications.ListAll(ctx, recentApplicationsLimit)
	case policy.ScopeOwnJobs:
		return s.applications.ListByRecruiter(ctx, principal.ID, recentApplicationsLimit)
	case policy.ScopeOwnApplications:
		return s.applications.ListByApplicant(ctx, principal.ID, recentApplicationsLimit)
	default:
		return nil, common.NewError(common.CodeForbidden, policy.ReasonForbidden, nil)
	}
}

type ProfileCompletion struct {
	ProfileComplete bool   `json:"profile_complete"`
	Message         string `json:"message"`
}

func (s *StatsService) ProfileCompletion(ctx context.Context, principal policy.Principal) (*ProfileCompletion, error) {
	account, err := s.users.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	result := &ProfileCompletion{ProfileComplete: account.ProfileComplete}
	if !account.ProfileComplete {
		result.Message = "Complete your profile editing & build your custom Resume"
	}
	return result, nil
}
