package job

import (
	"context"

	"jobport/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	Update(ctx context.Context, posting Job) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]Job, error)
	Count(ctx context.Context) (int, error)
	CountByRecruiter(ctx context.Context, recruiterID common.UUID) (int, error)
}
