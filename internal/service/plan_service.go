package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/pricing"
)

const catalogCacheKey = "plans:catalog"

type IPlanService interface {
	GetPlans(ctx context.Context, userId uuid.UUID) ([]dto.PlanResponse, error)
	GetPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.PlanResponse, error)
	GetRecommendedPlan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error)
	CreateCustomPlan(ctx context.Context, userId uuid.UUID, req *dto.CustomPlanRequest) (*dto.PlanResponse, error)
	SelectPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	logger     logger.ILogger
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache, logger logger.ILogger) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

func (s *planService) GetPlans(ctx context.Context, userId uuid.UUID) ([]dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.VisiblePlans{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toPlanResponse(plan, false))
	}
	return responses, nil
}

func (s *planService) GetPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.fetchVisiblePlan(ctx, uow, userId, planId)
	if err != nil {
		return nil, err
	}

	response := toPlanResponse(plan, true)
	return &response, nil
}

func (s *planService) GetRecommendedPlan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	catalog, err := s.catalogPlans(ctx, uow)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, apperror.NotFound("no catalog plans available")
	}

	for _, plan := range catalog {
		if plan.GoalType == user.Goal {
			response := toPlanResponse(plan, true)
			return &response, nil
		}
	}

	response := toPlanResponse(catalog[0], true)
	return &response, nil
}

func (s *planService) CreateCustomPlan(ctx context.Context, userId uuid.UUID, req *dto.CustomPlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meals := make([]entity.PlanMeal, 0, len(req.Meals))
	for _, meal := range req.Meals {
		meals = append(meals, entity.PlanMeal{
			DayOfWeek:    strings.ToLower(meal.DayOfWeek),
			MealType:     meal.MealType,
			Title:        meal.Title,
			Description:  meal.Description,
			Calories:     meal.Calories,
			ProteinGrams: meal.ProteinGrams,
			CarbsGrams:   meal.CarbsGrams,
			FatsGrams:    meal.FatsGrams,
		})
	}

	plan := &entity.NutritionPlan{
		Name:        req.Name,
		Description: req.Description,
		GoalType:    entity.GoalType(req.GoalType),
		IsCustom:    true,
		OwnerId:     &userId,
		Meals:       meals,
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("plan", "custom plan created", map[string]interface{}{
		"plan_id": plan.Id.String(),
		"user_id": userId.String(),
	})

	response := toPlanResponse(plan, true)
	return &response, nil
}

func (s *planService) SelectPlan(ctx context.Context, userId, planId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.fetchVisiblePlan(ctx, uow, userId, planId)
	if err != nil {
		return nil, err
	}

	if err := uow.UserRepository().UpdateCurrentPlan(ctx, userId, &plan.Id); err != nil {
		return nil, apperror.Internal(err)
	}

	response := toPlanResponse(plan, true)
	return &response, nil
}

// fetchVisiblePlan loads a plan and hides ownership mismatches behind a
// not-found error rather than revealing the plan exists.
func (s *planService) fetchVisiblePlan(ctx context.Context, uow unitofwork.UnitOfWork, userId, planId uuid.UUID) (*entity.NutritionPlan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if plan == nil || !plan.VisibleTo(userId) {
		return nil, apperror.NotFound("plan not found")
	}
	return plan, nil
}

// catalogPlans serves the shared catalog from a short-lived in-process cache.
func (s *planService) catalogPlans(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.NutritionPlan, error) {
	if cached, found := s.cache.Get(catalogCacheKey); found {
		if plans, ok := cached.([]*entity.NutritionPlan); ok {
			return plans, nil
		}
	}

	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.CatalogPlans{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.cache.Set(catalogCacheKey, plans, 5*time.Minute)
	return plans, nil
}

func toPlanResponse(plan *entity.NutritionPlan, includeMeals bool) dto.PlanResponse {
	plan.AttachMacroTotals()

	options := make([]dto.PricingOptionResponse, 0)
	for _, option := range pricing.ActiveOptions(plan) {
		options = append(options, dto.PricingOptionResponse{
			PeriodDays: option.PeriodDays,
			PriceCents: option.PriceCents,
			Currency:   option.Currency,
		})
	}

	response := dto.PlanResponse{
		Id:             plan.Id,
		Name:           plan.Name,
		Description:    plan.Description,
		GoalType:       string(plan.GoalType),
		IsCustom:       plan.IsCustom,
		Calories:       plan.Calories,
		ProteinGrams:   plan.ProteinGrams,
		CarbsGrams:     plan.CarbsGrams,
		FatsGrams:      plan.FatsGrams,
		CreatedAt:      plan.CreatedAt,
		PricingOptions: options,
	}

	if includeMeals {
		response.Meals = make([]dto.PlanMealResponse, 0, len(plan.Meals))
		for _, meal := range plan.Meals {
			response.Meals = append(response.Meals, dto.PlanMealResponse{
				Id:           meal.Id,
				DayOfWeek:    meal.DayOfWeek,
				MealType:     meal.MealType,
				Title:        meal.Title,
				Description:  meal.Description,
				Calories:     meal.Calories,
				ProteinGrams: meal.ProteinGrams,
				CarbsGrams:   meal.CarbsGrams,
				FatsGrams:    meal.FatsGrams,
			})
		}
	}

	return response
}
