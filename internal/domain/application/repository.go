package application

import (
	"context"

	"jobport/internal/common"
)

// List methods order by applied_at descending; limit <= 0 means no limit.
// Count methods treat an empty status as "any status".
type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	ListAll(ctx context.Context, limit int) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID, limit int) ([]Application, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID, limit int) ([]Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	CountAll(ctx context.Context) (int, error)
	CountByApplicant(ctx context.Context, applicantID common.UUID, status Status) (int, error)
	CountByRecruiter(ctx context.Context, recruiterID common.UUID, status Status) (int, error)
}
