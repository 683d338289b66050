package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	goal := entity.GoalBalanced
	if req.Goal != "" {
		goal = entity.GoalType(req.Goal)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Goal:         goal,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id.String()})

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Validation("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Validation("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	var activity *string
	if user.ActivityLevel != nil {
		s := string(*user.ActivityLevel)
		activity = &s
	}
	return dto.UserResponse{
		Id:                 user.Id,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Goal:               string(user.Goal),
		BirthDate:          user.BirthDate,
		HeightCm:           user.HeightCm,
		WeightKg:           user.WeightKg,
		ActivityLevel:      activity,
		DietaryPreferences: user.DietaryPreferences,
		Allergies:          user.Allergies,
		AvatarURL:          user.AvatarURL,
		CurrentPlanId:      user.CurrentPlanId,
		CreatedAt:          user.CreatedAt,
	}
}
