package implementation

import (
	"context"
	"errors"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/mapper"
	"fitbite-be/internal/model"
	"fitbite-be/internal/repository/contract"
	"fitbite-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlanMapper
}

func NewPlanRepository(db *gorm.DB) contract.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlanMapper(),
	}
}

func (r *PlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *entity.NutritionPlan) error {
	modelPlan := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Create(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(modelPlan)
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *entity.NutritionPlan) error {
	modelPlan := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Save(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(modelPlan)
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NutritionPlan{}).Error
}

func (r *PlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NutritionPlan, error) {
	var modelPlan model.NutritionPlan
	query := r.applySpecifications(r.db.WithContext(ctx).
		Preload("Meals").
		Preload("PricingOptions"), specs...)

	if err := query.First(&modelPlan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPlan), nil
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NutritionPlan, error) {
	var modelPlans []*model.NutritionPlan
	query := r.applySpecifications(r.db.WithContext(ctx).
		Preload("Meals").
		Preload("PricingOptions"), specs...)

	if err := query.Find(&modelPlans).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPlans), nil
}

func (r *PlanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NutritionPlan{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
