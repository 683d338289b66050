package mapper

import (
	"fitbite-be/internal/entity"
	"fitbite-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                 u.Id,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Goal:               entity.GoalType(u.Goal),
		BirthDate:          u.BirthDate,
		HeightCm:           u.HeightCm,
		WeightKg:           u.WeightKg,
		ActivityLevel:      activityToEntity(u.ActivityLevel),
		DietaryPreferences: u.DietaryPreferences,
		Allergies:          u.Allergies,
		AvatarURL:          u.AvatarURL,
		CurrentPlanId:      u.CurrentPlanId,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                 u.Id,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Goal:               string(u.Goal),
		BirthDate:          u.BirthDate,
		HeightCm:           u.HeightCm,
		WeightKg:           u.WeightKg,
		ActivityLevel:      activityToModel(u.ActivityLevel),
		DietaryPreferences: u.DietaryPreferences,
		Allergies:          u.Allergies,
		AvatarURL:          u.AvatarURL,
		CurrentPlanId:      u.CurrentPlanId,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func activityToEntity(v *string) *entity.ActivityLevel {
	if v == nil {
		return nil
	}
	level := entity.ActivityLevel(*v)
	return &level
}

func activityToModel(v *entity.ActivityLevel) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
