package model

import (
	"time"

	"github.com/google/uuid"
)

type PlanPurchase struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId               uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanNameSnapshot     string    `gorm:"type:varchar(200);not null"`
	PeriodDays           int       `gorm:"not null"`
	BasePriceCents       int       `gorm:"not null"`
	PriceCents           int       `gorm:"not null"`
	DiscountAmountCents  int       `gorm:"default:0"`
	DiscountLabel        *string   `gorm:"type:varchar(100)"`
	DiscountCode         *string   `gorm:"type:varchar(50)"`
	Currency             string    `gorm:"type:varchar(3);not null;default:'EUR'"`
	PaymentMethod        string    `gorm:"type:varchar(30);not null;default:'card'"`
	Status               string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionReference *string   `gorm:"type:varchar(64)"`

	BuyerFullName string  `gorm:"type:varchar(120);not null"`
	BuyerEmail    string  `gorm:"type:varchar(255);not null"`
	BuyerPhone    *string `gorm:"type:varchar(40)"`

	InvoiceNeeded bool    `gorm:"default:false"`
	CompanyName   *string `gorm:"type:varchar(200)"`
	CompanyCode   *string `gorm:"type:varchar(40)"`
	VatCode       *string `gorm:"type:varchar(40)"`
	ExtraNotes    *string `gorm:"type:text"`

	CreatedAt   time.Time `gorm:"autoCreateTime"`
	PaidAt      *time.Time
	ReceiptPath *string `gorm:"type:varchar(255)"`

	Items []*PurchaseItem `gorm:"foreignKey:PurchaseId;constraint:OnDelete:CASCADE"`
}

func (PlanPurchase) TableName() string {
	return "plan_purchases"
}

type PurchaseItem struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseId      uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek       string    `gorm:"type:varchar(20);not null"`
	MealType        string    `gorm:"type:varchar(50);not null"`
	MealTitle       string    `gorm:"type:varchar(200);not null"`
	MealDescription *string   `gorm:"type:text"`
	Calories        *int
	ProteinGrams    *int
	CarbsGrams      *int
	FatsGrams       *int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (PurchaseItem) TableName() string {
	return "plan_purchase_items"
}
