package dto

import (
	"time"

	"github.com/google/uuid"

	"fitbite-be/pkg/progress"
)

type UserResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	FirstName          *string    `json:"first_name"`
	LastName           *string    `json:"last_name"`
	Goal               string     `json:"goal"`
	BirthDate          *time.Time `json:"birth_date"`
	HeightCm           *float64   `json:"height_cm"`
	WeightKg           *float64   `json:"weight_kg"`
	ActivityLevel      *string    `json:"activity_level"`
	DietaryPreferences *string    `json:"dietary_preferences"`
	Allergies          *string    `json:"allergies"`
	AvatarURL          *string    `json:"avatar_url"`
	CurrentPlanId      *uuid.UUID `json:"current_plan_id"`
	CreatedAt          time.Time  `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	EligibleFirstPurchaseDiscount bool                 `json:"eligible_first_purchase_discount"`
	PlanProgress                  *progress.Projection `json:"plan_progress"`
}

type UpdateProfileRequest struct {
	FirstName          *string  `json:"first_name"`
	LastName           *string  `json:"last_name"`
	Goal               *string  `json:"goal" validate:"omitempty,oneof=weight_loss muscle_gain balanced vegetarian performance"`
	BirthDate          *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	HeightCm           *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	WeightKg           *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	ActivityLevel      *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active athlete"`
	DietaryPreferences *string  `json:"dietary_preferences"`
	Allergies          *string  `json:"allergies"`
}
