package implementation

import (
	"context"
	"errors"

	"fitbite-be/internal/entity"
	"fitbite-be/internal/mapper"
	"fitbite-be/internal/model"
	"fitbite-be/internal/repository/contract"
	"fitbite-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, purchase *entity.PlanPurchase) error {
	modelPurchase := r.mapper.ToModel(purchase)
	if err := r.db.WithContext(ctx).Create(modelPurchase).Error; err != nil {
		return err
	}
	*purchase = *r.mapper.ToEntity(modelPurchase)
	return nil
}

// Update persists the purchase row only; items are immutable snapshots.
func (r *PurchaseRepositoryImpl) Update(ctx context.Context, purchase *entity.PlanPurchase) error {
	modelPurchase := r.mapper.ToModel(purchase)
	modelPurchase.Items = nil
	if err := r.db.WithContext(ctx).
		Omit("Items").
		Save(modelPurchase).Error; err != nil {
		return err
	}
	items := purchase.Items
	*purchase = *r.mapper.ToEntity(modelPurchase)
	purchase.Items = items
	return nil
}

func (r *PurchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanPurchase, error) {
	var modelPurchase model.PlanPurchase
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Items"), specs...)

	if err := query.First(&modelPurchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPurchase), nil
}

func (r *PurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanPurchase, error) {
	var modelPurchases []*model.PlanPurchase
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Items"), specs...)

	if err := query.Find(&modelPurchases).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPurchases), nil
}

func (r *PurchaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PlanPurchase{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
