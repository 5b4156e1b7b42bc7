package user

import (
	"context"

	"jobport/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error
	SetProfileComplete(ctx context.Context, id common.UUID, complete bool) error
	Count(ctx context.Context) (int, error)
}
