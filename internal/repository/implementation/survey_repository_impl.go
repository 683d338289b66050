package implementation

import (
	"context"
	"errors"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/mapper"
	"fitbite-be/internal/model"
	"fitbite-be/internal/repository/contract"
	"fitbite-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewSurveyRepository(db *gorm.DB) contract.SurveyRepository {
	return &SurveyRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *SurveyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SurveyRepositoryImpl) Create(ctx context.Context, survey *entity.ProgressSurvey) error {
	modelSurvey := r.mapper.ToModel(survey)
	if err := r.db.WithContext(ctx).Create(modelSurvey).Error; err != nil {
		return err
	}
	*survey = *r.mapper.ToEntity(modelSurvey)
	return nil
}

func (r *SurveyRepositoryImpl) CreateBatch(ctx context.Context, surveys []*entity.ProgressSurvey) error {
	if len(surveys) == 0 {
		return nil
	}
	modelSurveys := make([]*model.ProgressSurvey, len(surveys))
	for i, s := range surveys {
		modelSurveys[i] = r.mapper.ToModel(s)
	}
	if err := r.db.WithContext(ctx).Create(&modelSurveys).Error; err != nil {
		return err
	}
	for i, m := range modelSurveys {
		*surveys[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SurveyRepositoryImpl) Update(ctx context.Context, survey *entity.ProgressSurvey) error {
	modelSurvey := r.mapper.ToModel(survey)
	if err := r.db.WithContext(ctx).Save(modelSurvey).Error; err != nil {
		return err
	}
	*survey = *r.mapper.ToEntity(modelSurvey)
	return nil
}

func (r *SurveyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProgressSurvey, error) {
	var modelSurvey model.ProgressSurvey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSurvey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSurvey), nil
}

func (r *SurveyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressSurvey, error) {
	var modelSurveys []*model.ProgressSurvey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSurveys).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSurveys), nil
}

func (r *SurveyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProgressSurvey{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SurveyRepositoryImpl) CreateResponse(ctx context.Context, response *entity.SurveyResponse) error {
	modelResponse := r.mapper.ResponseToModel(response)
	if err := r.db.WithContext(ctx).Create(modelResponse).Error; err != nil {
		return err
	}
	*response = *r.mapper.ResponseToEntity(modelResponse)
	return nil
}

func (r *SurveyRepositoryImpl) FindResponse(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error) {
	var modelResponse model.SurveyResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelResponse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ResponseToEntity(&modelResponse), nil
}

func (r *SurveyRepositoryImpl) FindResponsesBySurveyIds(ctx context.Context, surveyIds []uuid.UUID) ([]*entity.SurveyResponse, error) {
	if len(surveyIds) == 0 {
		return nil, nil
	}
	var modelResponses []*model.SurveyResponse
	err := r.db.WithContext(ctx).
		Where("survey_id IN ?", surveyIds).
		Find(&modelResponses).Error
	if err != nil {
		return nil, err
	}

	responses := make([]*entity.SurveyResponse, len(modelResponses))
	for i, m := range modelResponses {
		responses[i] = r.mapper.ResponseToEntity(m)
	}
	return responses, nil
}
