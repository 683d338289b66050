package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/survey"
)

type ISurveyService interface {
	GetSurveys(ctx context.Context, userId uuid.UUID) ([]dto.SurveyListItemResponse, error)
	GetSurvey(ctx context.Context, userId, surveyId uuid.UUID) (*dto.SurveyDetailResponse, error)
	SubmitResponse(ctx context.Context, userId, surveyId uuid.UUID, req *dto.SurveySubmitRequest) (*dto.SurveySubmitResponse, error)
}

type surveyService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewSurveyService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, logger logger.ILogger) ISurveyService {
	return &surveyService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *surveyService) GetSurveys(ctx context.Context, userId uuid.UUID) ([]dto.SurveyListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	surveys, err := uow.SurveyRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "scheduled_at", Desc: false},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	surveyIds := make([]uuid.UUID, 0, len(surveys))
	for _, item := range surveys {
		if err := s.recomputeAndPersist(ctx, uow, item, now); err != nil {
			return nil, err
		}
		surveyIds = append(surveyIds, item.Id)
	}

	answered := make(map[uuid.UUID]bool)
	if len(surveyIds) > 0 {
		submitted, err := uow.SurveyRepository().FindResponsesBySurveyIds(ctx, surveyIds)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, response := range submitted {
			answered[response.SurveyId] = true
		}
	}

	responses := make([]dto.SurveyListItemResponse, 0, len(surveys))
	for _, item := range surveys {
		listItem := toSurveyListItem(item)
		listItem.HasResponse = listItem.HasResponse || answered[item.Id]
		responses = append(responses, listItem)
	}
	return responses, nil
}

func (s *surveyService) GetSurvey(ctx context.Context, userId, surveyId uuid.UUID) (*dto.SurveyDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := s.fetchOwnedSurvey(ctx, uow, userId, surveyId)
	if err != nil {
		return nil, err
	}

	if err := s.recomputeAndPersist(ctx, uow, item, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &dto.SurveyDetailResponse{
		SurveyListItemResponse: toSurveyListItem(item),
		Questions:              survey.QuestionsFor(item.SurveyType),
	}, nil
}

func (s *surveyService) SubmitResponse(ctx context.Context, userId, surveyId uuid.UUID, req *dto.SurveySubmitRequest) (*dto.SurveySubmitResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	item, err := s.fetchOwnedSurvey(ctx, uow, userId, surveyId)
	if err != nil {
		return nil, err
	}

	if err := s.recomputeAndPersist(ctx, uow, item, time.Now().UTC()); err != nil {
		return nil, err
	}

	if item.Status == entity.SurveyStatusCompleted {
		return nil, apperror.Conflict("apklausa jau užpildyta")
	}
	if item.Status != entity.SurveyStatusScheduled {
		return nil, apperror.Conflict("ši apklausa šiuo metu neaktyvi")
	}

	existing, err := uow.SurveyRepository().FindResponse(ctx, specification.Filter("survey_id", item.Id))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("apklausa jau užpildyta")
	}

	answers := make([]survey.Answer, 0, len(req.Answers))
	for _, answer := range req.Answers {
		answers = append(answers, survey.Answer{QuestionId: answer.QuestionId, Value: answer.Value})
	}

	validated, err := survey.ValidateAnswers(item.SurveyType, answers)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	response := &entity.SurveyResponse{
		SurveyId: item.Id,
		UserId:   userId,
		Answers:  validated,
	}
	if err := uow.SurveyRepository().CreateResponse(ctx, response); err != nil {
		return nil, apperror.Internal(err)
	}

	completedAt := time.Now().UTC()
	item.Status = entity.SurveyStatusCompleted
	item.CompletedAt = &completedAt
	if err := uow.SurveyRepository().Update(ctx, item); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("survey", "response submitted", map[string]interface{}{
		"survey_id": item.Id.String(),
		"user_id":   userId.String(),
	})

	if s.publisher != nil {
		if err := s.publisher.PublishSurveyCompleted(ctx, dto.SurveyCompletedMessage{
			SurveyId:   item.Id,
			UserId:     userId,
			SurveyType: string(item.SurveyType),
		}); err != nil {
			s.logger.Warn("survey", "failed to publish completion event", map[string]interface{}{
				"survey_id": item.Id.String(),
				"error":     err.Error(),
			})
		}
	}

	return &dto.SurveySubmitResponse{Id: response.Id, SubmittedAt: response.SubmittedAt}, nil
}

// recomputeAndPersist derives the survey's current status from the clock and
// writes it back when it changed. A due final survey routes through the
// activation procedure so its offset and schedule are rewritten together.
func (s *surveyService) recomputeAndPersist(ctx context.Context, uow unitofwork.UnitOfWork, item *entity.ProgressSurvey, now time.Time) error {
	changed, finalActivation := survey.Recompute(item, now)

	if finalActivation {
		purchase, err := uow.PurchaseRepository().FindOne(ctx, specification.ByID{ID: item.PurchaseId})
		if err != nil {
			return apperror.Internal(err)
		}
		if purchase == nil {
			return nil
		}
		start := purchase.StartTime()
		if start == nil {
			return nil
		}
		survey.ArmFinal(item, *start, purchase.PeriodDays, now)
		changed = true
	}

	if !changed {
		return nil
	}
	if err := uow.SurveyRepository().Update(ctx, item); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *surveyService) fetchOwnedSurvey(ctx context.Context, uow unitofwork.UnitOfWork, userId, surveyId uuid.UUID) (*entity.ProgressSurvey, error) {
	item, err := uow.SurveyRepository().FindOne(ctx,
		specification.ByID{ID: surveyId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if item == nil {
		return nil, apperror.NotFound("survey not found")
	}
	return item, nil
}

func toSurveyListItem(item *entity.ProgressSurvey) dto.SurveyListItemResponse {
	return dto.SurveyListItemResponse{
		Id:          item.Id,
		SurveyType:  string(item.SurveyType),
		Status:      string(item.Status),
		PlanName:    item.PlanNameSnapshot,
		DayOffset:   item.DayOffset,
		ScheduledAt: item.ScheduledAt,
		CanSubmit:   item.Status == entity.SurveyStatusScheduled,
		HasResponse: item.Status == entity.SurveyStatusCompleted,
	}
}
