package company

import (
	"context"

	"jobport/internal/common"
)

type Repository interface {
	Create(ctx context.Context, profile Company) (*Company, error)
	Update(ctx context.Context, profile Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	GetByOwner(ctx context.Context, ownerID common.UUID) (*Company, error)
}
