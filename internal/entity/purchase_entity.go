package entity

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string
type PaymentMethod string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusPaid     PurchaseStatus = "paid"
	PurchaseStatusCanceled PurchaseStatus = "canceled"

	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

// PlanPurchase is a point-in-time receipt: plan name, period, prices and meal
// items are frozen at checkout even if the source plan changes later.
type PlanPurchase struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	PlanId               uuid.UUID
	PlanNameSnapshot     string
	PeriodDays           int
	BasePriceCents       int
	PriceCents           int
	DiscountAmountCents  int
	DiscountLabel        *string
	DiscountCode         *string
	Currency             string
	PaymentMethod        PaymentMethod
	Status               PurchaseStatus
	TransactionReference *string

	BuyerFullName string
	BuyerEmail    string
	BuyerPhone    *string

	InvoiceNeeded bool
	CompanyName   *string
	CompanyCode   *string
	VatCode       *string
	ExtraNotes    *string

	CreatedAt   time.Time
	PaidAt      *time.Time
	ReceiptPath *string

	Items []PurchaseItem
}

// StartTime is the subscription clock origin: paid time, or creation time for
// records that never recorded a paid stamp.
func (p *PlanPurchase) StartTime() *time.Time {
	if p.PaidAt != nil {
		return p.PaidAt
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		return &created
	}
	return nil
}

// DiscountPercent derives the effective percent from the stored amounts.
func (p *PlanPurchase) DiscountPercent() *float64 {
	if p.BasePriceCents == 0 || p.DiscountAmountCents == 0 {
		return nil
	}
	percent := float64(p.DiscountAmountCents) / float64(p.BasePriceCents)
	return &percent
}

// PurchaseItem is an immutable snapshot of one plan meal at purchase time.
type PurchaseItem struct {
	Id              uuid.UUID
	PurchaseId      uuid.UUID
	DayOfWeek       string
	MealType        string
	MealTitle       string
	MealDescription *string
	Calories        *int
	ProteinGrams    *int
	CarbsGrams      *int
	FatsGrams       *int
	CreatedAt       time.Time
}
