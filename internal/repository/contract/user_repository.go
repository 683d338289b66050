package contract

import (
	"context"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateCurrentPlan(ctx context.Context, userId uuid.UUID, planId *uuid.UUID) error
	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error
}
