package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanMealResponse struct {
	Id           uuid.UUID `json:"id"`
	DayOfWeek    string    `json:"day_of_week"`
	MealType     string    `json:"meal_type"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Calories     *int      `json:"calories"`
	ProteinGrams *int      `json:"protein_grams"`
	CarbsGrams   *int      `json:"carbs_grams"`
	FatsGrams    *int      `json:"fats_grams"`
}

type PricingOptionResponse struct {
	PeriodDays int    `json:"period_days"`
	PriceCents int    `json:"price_cents"`
	Currency   string `json:"currency"`
}

type PlanResponse struct {
	Id             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	GoalType       string                  `json:"goal_type"`
	IsCustom       bool                    `json:"is_custom"`
	Calories       *int                    `json:"calories"`
	ProteinGrams   *int                    `json:"protein_grams"`
	CarbsGrams     *int                    `json:"carbs_grams"`
	FatsGrams      *int                    `json:"fats_grams"`
	CreatedAt      time.Time               `json:"created_at"`
	Meals          []PlanMealResponse      `json:"meals,omitempty"`
	PricingOptions []PricingOptionResponse `json:"pricing_options"`
}

type CustomMealInput struct {
	DayOfWeek    string  `json:"day_of_week" validate:"required"`
	MealType     string  `json:"meal_type" validate:"required"`
	Title        string  `json:"title" validate:"required,max=150"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	Calories     *int    `json:"calories" validate:"omitempty,gte=0"`
	ProteinGrams *int    `json:"protein_grams" validate:"omitempty,gte=0"`
	CarbsGrams   *int    `json:"carbs_grams" validate:"omitempty,gte=0"`
	FatsGrams    *int    `json:"fats_grams" validate:"omitempty,gte=0"`
}

type CustomPlanRequest struct {
	Name        string            `json:"name" validate:"required,min=3,max=150"`
	Description string            `json:"description" validate:"max=500"`
	GoalType    string            `json:"goal_type" validate:"required,oneof=weight_loss muscle_gain balanced vegetarian performance"`
	Meals       []CustomMealInput `json:"meals" validate:"required,min=1,dive"`
}
