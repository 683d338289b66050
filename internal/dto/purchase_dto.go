package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	PeriodDays    int     `json:"period_days" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=card bank_transfer cash"`
	BuyerFullName string  `json:"buyer_full_name" validate:"required,min=3,max=120"`
	BuyerEmail    string  `json:"buyer_email" validate:"required,email"`
	BuyerPhone    *string `json:"buyer_phone" validate:"omitempty,max=40"`
	DiscountCode  *string `json:"discount_code" validate:"omitempty,max=50"`

	CardNumber   *string `json:"card_number" validate:"omitempty,max=32"`
	CardExpMonth *string `json:"card_exp_month" validate:"omitempty,max=2"`
	CardExpYear  *string `json:"card_exp_year" validate:"omitempty,max=4"`
	CardCvc      *string `json:"card_cvc" validate:"omitempty,max=4"`

	InvoiceNeeded bool    `json:"invoice_needed"`
	CompanyName   *string `json:"company_name" validate:"omitempty,max=200"`
	CompanyCode   *string `json:"company_code" validate:"omitempty,max=40"`
	VatCode       *string `json:"vat_code" validate:"omitempty,max=40"`
	ExtraNotes    *string `json:"extra_notes" validate:"omitempty,max=1000"`
}

type PurchasePaidMessage struct {
	PurchaseId uuid.UUID `json:"purchase_id"`
	UserId     uuid.UUID `json:"user_id"`
}

type PurchaseCancelledMessage struct {
	PurchaseId uuid.UUID `json:"purchase_id"`
	UserId     uuid.UUID `json:"user_id"`
}

type PurchaseSummaryResponse struct {
	Id                   uuid.UUID  `json:"id"`
	PlanId               uuid.UUID  `json:"plan_id"`
	PlanNameSnapshot     string     `json:"plan_name_snapshot"`
	PeriodDays           int        `json:"period_days"`
	BasePriceCents       int        `json:"base_price_cents"`
	PriceCents           int        `json:"price_cents"`
	DiscountAmountCents  int        `json:"discount_amount_cents"`
	DiscountLabel        *string    `json:"discount_label"`
	DiscountCode         *string    `json:"discount_code"`
	DiscountPercent      *float64   `json:"discount_percent"`
	Currency             string     `json:"currency"`
	Status               string     `json:"status"`
	PaymentMethod        string     `json:"payment_method"`
	CreatedAt            time.Time  `json:"created_at"`
	PaidAt               *time.Time `json:"paid_at"`
	TransactionReference *string    `json:"transaction_reference"`
	ReceiptAvailable     bool       `json:"receipt_available"`
}

type PurchaseItemResponse struct {
	DayOfWeek       string  `json:"day_of_week"`
	MealType        string  `json:"meal_type"`
	MealTitle       string  `json:"meal_title"`
	MealDescription *string `json:"meal_description"`
	Calories        *int    `json:"calories"`
	ProteinGrams    *int    `json:"protein_grams"`
	CarbsGrams      *int    `json:"carbs_grams"`
	FatsGrams       *int    `json:"fats_grams"`
}

type PurchaseDetailResponse struct {
	PurchaseSummaryResponse
	BuyerFullName string                 `json:"buyer_full_name"`
	BuyerEmail    string                 `json:"buyer_email"`
	BuyerPhone    *string                `json:"buyer_phone"`
	InvoiceNeeded bool                   `json:"invoice_needed"`
	CompanyName   *string                `json:"company_name"`
	CompanyCode   *string                `json:"company_code"`
	VatCode       *string                `json:"vat_code"`
	ExtraNotes    *string                `json:"extra_notes"`
	Items         []PurchaseItemResponse `json:"items"`
}
