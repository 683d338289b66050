package dto

import (
	"time"

	"github.com/google/uuid"

	"fitbite-be/pkg/survey"
)

type SurveyListItemResponse struct {
	Id          uuid.UUID `json:"id"`
	SurveyType  string    `json:"survey_type"`
	Status      string    `json:"status"`
	PlanName    string    `json:"plan_name"`
	DayOffset   int       `json:"day_offset"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CanSubmit   bool      `json:"can_submit"`
	HasResponse bool      `json:"has_response"`
}

type SurveyDetailResponse struct {
	SurveyListItemResponse
	Questions []survey.Question `json:"questions"`
}

type SurveyAnswerInput struct {
	QuestionId string      `json:"question_id" validate:"required"`
	Value      interface{} `json:"value"`
}

type SurveySubmitRequest struct {
	Answers []SurveyAnswerInput `json:"answers" validate:"required,min=1,dive"`
}

type SurveySubmitResponse struct {
	Id          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SurveyCompletedMessage struct {
	SurveyId   uuid.UUID `json:"survey_id"`
	UserId     uuid.UUID `json:"user_id"`
	SurveyType string    `json:"survey_type"`
}
