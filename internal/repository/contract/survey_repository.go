package contract

import (
	"context"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *entity.ProgressSurvey) error
	CreateBatch(ctx context.Context, surveys []*entity.ProgressSurvey) error
	Update(ctx context.Context, survey *entity.ProgressSurvey) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProgressSurvey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressSurvey, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Responses
	CreateResponse(ctx context.Context, response *entity.SurveyResponse) error
	FindResponse(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error)
	FindResponsesBySurveyIds(ctx context.Context, surveyIds []uuid.UUID) ([]*entity.SurveyResponse, error)
}
