package mapper

import (
	"gorm.io/datatypes"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/model"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

func (m *SurveyMapper) ToEntity(s *model.ProgressSurvey) *entity.ProgressSurvey {
	if s == nil {
		return nil
	}
	return &entity.ProgressSurvey{
		Id:               s.Id,
		UserId:           s.UserId,
		PurchaseId:       s.PurchaseId,
		PlanId:           s.PlanId,
		PlanNameSnapshot: s.PlanNameSnapshot,
		SurveyType:       entity.SurveyType(s.SurveyType),
		DayOffset:        s.DayOffset,
		ScheduledAt:      s.ScheduledAt,
		Status:           entity.SurveyStatus(s.Status),
		CreatedAt:        s.CreatedAt,
		CompletedAt:      s.CompletedAt,
		CancelledAt:      s.CancelledAt,
	}
}

func (m *SurveyMapper) ToModel(s *entity.ProgressSurvey) *model.ProgressSurvey {
	if s == nil {
		return nil
	}
	return &model.ProgressSurvey{
		Id:               s.Id,
		UserId:           s.UserId,
		PurchaseId:       s.PurchaseId,
		PlanId:           s.PlanId,
		PlanNameSnapshot: s.PlanNameSnapshot,
		SurveyType:       string(s.SurveyType),
		DayOffset:        s.DayOffset,
		ScheduledAt:      s.ScheduledAt,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		CompletedAt:      s.CompletedAt,
		CancelledAt:      s.CancelledAt,
	}
}

func (m *SurveyMapper) ToEntities(surveys []*model.ProgressSurvey) []*entity.ProgressSurvey {
	entities := make([]*entity.ProgressSurvey, len(surveys))
	for i, s := range surveys {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SurveyMapper) ResponseToEntity(r *model.SurveyResponse) *entity.SurveyResponse {
	if r == nil {
		return nil
	}
	return &entity.SurveyResponse{
		Id:          r.Id,
		SurveyId:    r.SurveyId,
		UserId:      r.UserId,
		Answers:     map[string]interface{}(r.Answers),
		SubmittedAt: r.SubmittedAt,
	}
}

func (m *SurveyMapper) ResponseToModel(r *entity.SurveyResponse) *model.SurveyResponse {
	if r == nil {
		return nil
	}
	return &model.SurveyResponse{
		Id:          r.Id,
		SurveyId:    r.SurveyId,
		UserId:      r.UserId,
		Answers:     datatypes.JSONMap(r.Answers),
		SubmittedAt: r.SubmittedAt,
	}
}
