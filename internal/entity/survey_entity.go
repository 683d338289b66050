package entity

import (
	"time"

	"github.com/google/uuid"
)

type SurveyType string
type SurveyStatus string

const (
	SurveyTypeProgress SurveyType = "progress"
	SurveyTypeFinal    SurveyType = "final"

	// "cancelled" doubles as "not yet due": future checkpoints sit in this
	// state until their scheduled time passes and the recompute arms them.
	SurveyStatusScheduled SurveyStatus = "scheduled"
	SurveyStatusCompleted SurveyStatus = "completed"
	SurveyStatusCancelled SurveyStatus = "cancelled"
)

type ProgressSurvey struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	PurchaseId       uuid.UUID
	PlanId           uuid.UUID
	PlanNameSnapshot string
	SurveyType       SurveyType
	DayOffset        int
	ScheduledAt      time.Time
	Status           SurveyStatus
	CreatedAt        time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
}

// SurveyResponse holds the validated answer map for a survey; at most one
// response exists per survey and its presence pins the survey to completed.
type SurveyResponse struct {
	Id          uuid.UUID
	SurveyId    uuid.UUID
	UserId      uuid.UUID
	Answers     map[string]interface{}
	SubmittedAt time.Time
}
