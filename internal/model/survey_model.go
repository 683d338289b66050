package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProgressSurvey struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchaseId       uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId           uuid.UUID `gorm:"type:uuid;not null"`
	PlanNameSnapshot string    `gorm:"type:varchar(200);not null"`
	SurveyType       string    `gorm:"type:varchar(20);not null;default:'progress'"`
	DayOffset        int       `gorm:"not null"`
	ScheduledAt      time.Time `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	CompletedAt      *time.Time
	CancelledAt      *time.Time
}

func (ProgressSurvey) TableName() string {
	return "plan_progress_surveys"
}

type SurveyResponse struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SurveyId    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	UserId      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Answers     datatypes.JSONMap `gorm:"not null"`
	SubmittedAt time.Time         `gorm:"autoCreateTime"`
}

func (SurveyResponse) TableName() string {
	return "plan_progress_survey_responses"
}
