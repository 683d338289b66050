package mapper

import (
	"fitbite-be/internal/entity"
	"fitbite-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.NutritionPlan) *entity.NutritionPlan {
	if p == nil {
		return nil
	}
	return &entity.NutritionPlan{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		GoalType:       entity.GoalType(p.GoalType),
		IsCustom:       p.IsCustom,
		OwnerId:        p.OwnerId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Meals:          m.mealsToEntities(p.Meals),
		PricingOptions: m.optionsToEntities(p.PricingOptions),
	}
}

func (m *PlanMapper) ToModel(p *entity.NutritionPlan) *model.NutritionPlan {
	if p == nil {
		return nil
	}
	return &model.NutritionPlan{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		GoalType:       string(p.GoalType),
		IsCustom:       p.IsCustom,
		OwnerId:        p.OwnerId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Meals:          m.mealsToModels(p.Meals),
		PricingOptions: m.optionsToModels(p.PricingOptions),
	}
}

func (m *PlanMapper) ToEntities(plans []*model.NutritionPlan) []*entity.NutritionPlan {
	entities := make([]*entity.NutritionPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PlanMapper) MealToEntity(meal *model.PlanMeal) *entity.PlanMeal {
	if meal == nil {
		return nil
	}
	return &entity.PlanMeal{
		Id:           meal.Id,
		PlanId:       meal.PlanId,
		DayOfWeek:    meal.DayOfWeek,
		MealType:     meal.MealType,
		Title:        meal.Title,
		Description:  meal.Description,
		Calories:     meal.Calories,
		ProteinGrams: meal.ProteinGrams,
		CarbsGrams:   meal.CarbsGrams,
		FatsGrams:    meal.FatsGrams,
	}
}

func (m *PlanMapper) MealToModel(meal *entity.PlanMeal) *model.PlanMeal {
	if meal == nil {
		return nil
	}
	return &model.PlanMeal{
		Id:           meal.Id,
		PlanId:       meal.PlanId,
		DayOfWeek:    meal.DayOfWeek,
		MealType:     meal.MealType,
		Title:        meal.Title,
		Description:  meal.Description,
		Calories:     meal.Calories,
		ProteinGrams: meal.ProteinGrams,
		CarbsGrams:   meal.CarbsGrams,
		FatsGrams:    meal.FatsGrams,
	}
}

func (m *PlanMapper) OptionToEntity(o *model.PricingOption) *entity.PricingOption {
	if o == nil {
		return nil
	}
	return &entity.PricingOption{
		Id:         o.Id,
		PlanId:     o.PlanId,
		PeriodDays: o.PeriodDays,
		PriceCents: o.PriceCents,
		Currency:   o.Currency,
		IsActive:   o.IsActive,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func (m *PlanMapper) OptionToModel(o *entity.PricingOption) *model.PricingOption {
	if o == nil {
		return nil
	}
	return &model.PricingOption{
		Id:         o.Id,
		PlanId:     o.PlanId,
		PeriodDays: o.PeriodDays,
		PriceCents: o.PriceCents,
		Currency:   o.Currency,
		IsActive:   o.IsActive,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func (m *PlanMapper) mealsToEntities(meals []*model.PlanMeal) []entity.PlanMeal {
	if meals == nil {
		return nil
	}
	entities := make([]entity.PlanMeal, len(meals))
	for i, meal := range meals {
		entities[i] = *m.MealToEntity(meal)
	}
	return entities
}

func (m *PlanMapper) mealsToModels(meals []entity.PlanMeal) []*model.PlanMeal {
	if meals == nil {
		return nil
	}
	models := make([]*model.PlanMeal, len(meals))
	for i := range meals {
		models[i] = m.MealToModel(&meals[i])
	}
	return models
}

func (m *PlanMapper) optionsToEntities(options []*model.PricingOption) []entity.PricingOption {
	if options == nil {
		return nil
	}
	entities := make([]entity.PricingOption, len(options))
	for i, o := range options {
		entities[i] = *m.OptionToEntity(o)
	}
	return entities
}

func (m *PlanMapper) optionsToModels(options []entity.PricingOption) []*model.PricingOption {
	if options == nil {
		return nil
	}
	models := make([]*model.PricingOption, len(options))
	for i := range options {
		models[i] = m.OptionToModel(&options[i])
	}
	return models
}
