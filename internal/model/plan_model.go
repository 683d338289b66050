package model

import (
	"time"

	"github.com/google/uuid"
)

type NutritionPlan struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(150);not null"`
	Description  string    `gorm:"type:varchar(500);not null"`
	GoalType     string    `gorm:"type:varchar(50);not null"`
	IsCustom     bool      `gorm:"default:false"`
	OwnerId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	Meals          []*PlanMeal      `gorm:"foreignKey:PlanId;constraint:OnDelete:CASCADE"`
	PricingOptions []*PricingOption `gorm:"foreignKey:PlanId;constraint:OnDelete:CASCADE"`
}

func (NutritionPlan) TableName() string {
	return "nutrition_plans"
}

type PlanMeal struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId       uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek    string    `gorm:"type:varchar(20);not null"`
	MealType     string    `gorm:"type:varchar(50);not null"`
	Title        string    `gorm:"type:varchar(150);not null"`
	Description  *string   `gorm:"type:varchar(500)"`
	Calories     *int
	ProteinGrams *int
	CarbsGrams   *int
	FatsGrams    *int
}

func (PlanMeal) TableName() string {
	return "plan_meals"
}

type PricingOption struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plan_period"`
	PeriodDays int       `gorm:"not null;uniqueIndex:uq_plan_period"`
	PriceCents int       `gorm:"not null"`
	Currency   string    `gorm:"type:varchar(3);not null;default:'EUR'"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (PricingOption) TableName() string {
	return "plan_pricing_options"
}
