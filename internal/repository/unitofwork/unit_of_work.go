package unitofwork

import (
	"context"

	"fitbite-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PlanRepository() contract.PlanRepository
	PurchaseRepository() contract.PurchaseRepository
	SurveyRepository() contract.SurveyRepository
}
