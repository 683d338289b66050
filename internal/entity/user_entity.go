package entity

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string
type ActivityLevel string

const (
	GoalWeightLoss  GoalType = "weight_loss"
	GoalMuscleGain  GoalType = "muscle_gain"
	GoalBalanced    GoalType = "balanced"
	GoalVegetarian  GoalType = "vegetarian"
	GoalPerformance GoalType = "performance"

	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

type User struct {
	Id                 uuid.UUID
	Email              string
	PasswordHash       string
	FirstName          *string
	LastName           *string
	Goal               GoalType
	BirthDate          *time.Time
	HeightCm           *float64
	WeightKg           *float64
	ActivityLevel      *ActivityLevel
	DietaryPreferences *string
	Allergies          *string
	AvatarURL          *string
	CurrentPlanId      *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
