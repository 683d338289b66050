package contract

import (
	"context"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/repository/specification"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.PlanPurchase) error
	Update(ctx context.Context, purchase *entity.PlanPurchase) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanPurchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanPurchase, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
