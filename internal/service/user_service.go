package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/progress"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return s.buildProfile(ctx, uow, user)
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Goal != nil {
		user.Goal = entity.GoalType(*req.Goal)
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, apperror.Validation("birth_date must be formatted YYYY-MM-DD")
		}
		user.BirthDate = &birthDate
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.ActivityLevel != nil {
		level := entity.ActivityLevel(*req.ActivityLevel)
		user.ActivityLevel = &level
	}
	if req.DietaryPreferences != nil {
		user.DietaryPreferences = req.DietaryPreferences
	}
	if req.Allergies != nil {
		user.Allergies = req.Allergies
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("user", "profile updated", map[string]interface{}{"user_id": userId.String()})

	return s.buildProfile(ctx, uow, user)
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.Validation("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := uow.UserRepository().UpdatePassword(ctx, userId, string(hash)); err != nil {
		return apperror.Internal(err)
	}

	s.logger.Info("user", "password changed", map[string]interface{}{"user_id": userId.String()})
	return nil
}

func (s *userService) buildProfile(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.ProfileResponse, error) {
	purchaseCount, err := uow.PurchaseRepository().Count(ctx, specification.OwnedBy{UserId: user.Id})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	purchases, err := uow.PurchaseRepository().FindAll(ctx,
		specification.OwnedBy{UserId: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var projection *progress.Projection
	if picked := progress.Pick(purchases, user.CurrentPlanId); picked != nil {
		projection = progress.Project(picked, time.Now().UTC())
	}

	return &dto.ProfileResponse{
		UserResponse:                  toUserResponse(user),
		EligibleFirstPurchaseDiscount: purchaseCount == 0,
		PlanProgress:                  projection,
	}, nil
}
