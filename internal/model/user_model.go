package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	FirstName          *string   `gorm:"type:varchar(100)"`
	LastName           *string   `gorm:"type:varchar(100)"`
	Goal               string    `gorm:"type:varchar(50);not null;default:'balanced'"`
	BirthDate          *time.Time
	HeightCm           *float64
	WeightKg           *float64
	ActivityLevel      *string    `gorm:"type:varchar(50)"`
	DietaryPreferences *string    `gorm:"type:varchar(255)"`
	Allergies          *string    `gorm:"type:varchar(255)"`
	AvatarURL          *string    `gorm:"type:varchar(255)"`
	CurrentPlanId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
