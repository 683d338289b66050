package contract

import (
	"context"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.NutritionPlan) error
	Update(ctx context.Context, plan *entity.NutritionPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NutritionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NutritionPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
