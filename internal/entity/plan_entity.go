package entity

import (
	"time"

	"github.com/google/uuid"
)

// NutritionPlan is either a public catalog plan (OwnerId nil) or a user-owned
// custom plan. Macro totals are derived from the meals, never stored as truth.
type NutritionPlan struct {
	Id           uuid.UUID
	Name         string
	Description  string
	GoalType     GoalType
	Calories     *int
	ProteinGrams *int
	CarbsGrams   *int
	FatsGrams    *int
	IsCustom     bool
	OwnerId      *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Meals          []PlanMeal
	PricingOptions []PricingOption
}

// VisibleTo reports whether the plan is public or owned by the given user.
func (p *NutritionPlan) VisibleTo(userId uuid.UUID) bool {
	return p.OwnerId == nil || *p.OwnerId == userId
}

// AttachMacroTotals recomputes the aggregate macros from the plan's meals.
func (p *NutritionPlan) AttachMacroTotals() {
	if len(p.Meals) == 0 {
		return
	}
	var calories, protein, carbs, fats int
	for _, meal := range p.Meals {
		calories += valueOrZero(meal.Calories)
		protein += valueOrZero(meal.ProteinGrams)
		carbs += valueOrZero(meal.CarbsGrams)
		fats += valueOrZero(meal.FatsGrams)
	}
	p.Calories = &calories
	p.ProteinGrams = &protein
	p.CarbsGrams = &carbs
	p.FatsGrams = &fats
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

type PlanMeal struct {
	Id           uuid.UUID
	PlanId       uuid.UUID
	DayOfWeek    string
	MealType     string
	Title        string
	Description  *string
	Calories     *int
	ProteinGrams *int
	CarbsGrams   *int
	FatsGrams    *int
}

// PricingOption offers a plan for a fixed period at a price in minor currency
// units. Purchases snapshot the price, so rows stay immutable once referenced.
type PricingOption struct {
	Id         uuid.UUID
	PlanId     uuid.UUID
	PeriodDays int
	PriceCents int
	Currency   string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
