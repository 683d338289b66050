package mapper

import (
	"fitbite-be/internal/entity"
	"fitbite-be/internal/model"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

func (m *PurchaseMapper) ToEntity(p *model.PlanPurchase) *entity.PlanPurchase {
	if p == nil {
		return nil
	}
	return &entity.PlanPurchase{
		Id:                   p.Id,
		UserId:               p.UserId,
		PlanId:               p.PlanId,
		PlanNameSnapshot:     p.PlanNameSnapshot,
		PeriodDays:           p.PeriodDays,
		BasePriceCents:       p.BasePriceCents,
		PriceCents:           p.PriceCents,
		DiscountAmountCents:  p.DiscountAmountCents,
		DiscountLabel:        p.DiscountLabel,
		DiscountCode:         p.DiscountCode,
		Currency:             p.Currency,
		PaymentMethod:        entity.PaymentMethod(p.PaymentMethod),
		Status:               entity.PurchaseStatus(p.Status),
		TransactionReference: p.TransactionReference,
		BuyerFullName:        p.BuyerFullName,
		BuyerEmail:           p.BuyerEmail,
		BuyerPhone:           p.BuyerPhone,
		InvoiceNeeded:        p.InvoiceNeeded,
		CompanyName:          p.CompanyName,
		CompanyCode:          p.CompanyCode,
		VatCode:              p.VatCode,
		ExtraNotes:           p.ExtraNotes,
		CreatedAt:            p.CreatedAt,
		PaidAt:               p.PaidAt,
		ReceiptPath:          p.ReceiptPath,
		Items:                m.itemsToEntities(p.Items),
	}
}

func (m *PurchaseMapper) ToModel(p *entity.PlanPurchase) *model.PlanPurchase {
	if p == nil {
		return nil
	}
	return &model.PlanPurchase{
		Id:                   p.Id,
		UserId:               p.UserId,
		PlanId:               p.PlanId,
		PlanNameSnapshot:     p.PlanNameSnapshot,
		PeriodDays:           p.PeriodDays,
		BasePriceCents:       p.BasePriceCents,
		PriceCents:           p.PriceCents,
		DiscountAmountCents:  p.DiscountAmountCents,
		DiscountLabel:        p.DiscountLabel,
		DiscountCode:         p.DiscountCode,
		Currency:             p.Currency,
		PaymentMethod:        string(p.PaymentMethod),
		Status:               string(p.Status),
		TransactionReference: p.TransactionReference,
		BuyerFullName:        p.BuyerFullName,
		BuyerEmail:           p.BuyerEmail,
		BuyerPhone:           p.BuyerPhone,
		InvoiceNeeded:        p.InvoiceNeeded,
		CompanyName:          p.CompanyName,
		CompanyCode:          p.CompanyCode,
		VatCode:              p.VatCode,
		ExtraNotes:           p.ExtraNotes,
		CreatedAt:            p.CreatedAt,
		PaidAt:               p.PaidAt,
		ReceiptPath:          p.ReceiptPath,
		Items:                m.itemsToModels(p.Items),
	}
}

func (m *PurchaseMapper) ToEntities(purchases []*model.PlanPurchase) []*entity.PlanPurchase {
	entities := make([]*entity.PlanPurchase, len(purchases))
	for i, p := range purchases {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PurchaseMapper) ItemToEntity(item *model.PurchaseItem) *entity.PurchaseItem {
	if item == nil {
		return nil
	}
	return &entity.PurchaseItem{
		Id:              item.Id,
		PurchaseId:      item.PurchaseId,
		DayOfWeek:       item.DayOfWeek,
		MealType:        item.MealType,
		MealTitle:       item.MealTitle,
		MealDescription: item.MealDescription,
		Calories:        item.Calories,
		ProteinGrams:    item.ProteinGrams,
		CarbsGrams:      item.CarbsGrams,
		FatsGrams:       item.FatsGrams,
		CreatedAt:       item.CreatedAt,
	}
}

func (m *PurchaseMapper) ItemToModel(item *entity.PurchaseItem) *model.PurchaseItem {
	if item == nil {
		return nil
	}
	return &model.PurchaseItem{
		Id:              item.Id,
		PurchaseId:      item.PurchaseId,
		DayOfWeek:       item.DayOfWeek,
		MealType:        item.MealType,
		MealTitle:       item.MealTitle,
		MealDescription: item.MealDescription,
		Calories:        item.Calories,
		ProteinGrams:    item.ProteinGrams,
		CarbsGrams:      item.CarbsGrams,
		FatsGrams:       item.FatsGrams,
		CreatedAt:       item.CreatedAt,
	}
}

func (m *PurchaseMapper) itemsToEntities(items []*model.PurchaseItem) []entity.PurchaseItem {
	if items == nil {
		return nil
	}
	entities := make([]entity.PurchaseItem, len(items))
	for i, item := range items {
		entities[i] = *m.ItemToEntity(item)
	}
	return entities
}

func (m *PurchaseMapper) itemsToModels(items []entity.PurchaseItem) []*model.PurchaseItem {
	if items == nil {
		return nil
	}
	models := make([]*model.PurchaseItem, len(items))
	for i := range items {
		models[i] = m.ItemToModel(&items[i])
	}
	return models
}
