package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func cardRequest(number, cvc string) *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		PeriodDays:    14,
		PaymentMethod: "card",
		BuyerFullName: "Jonas Jonaitis",
		BuyerEmail:    "jonas@example.com",
		CardNumber:    strPtr(number),
		CardExpMonth:  strPtr("12"),
		CardExpYear:   strPtr("2027"),
		CardCvc:       strPtr(cvc),
	}
}

func TestValidatePaymentDetails(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.CheckoutRequest
		wantErr bool
	}{
		{name: "16 digit card", req: cardRequest("4242424242424242", "123")},
		{name: "15 digit card with 4 digit cvc", req: cardRequest("378282246310005", "1234")},
		{name: "card number with spaces", req: cardRequest("4242 4242 4242 4242", "123")},
		{name: "too few digits", req: cardRequest("42424242", "123"), wantErr: true},
		{name: "too many digits", req: cardRequest("42424242424242424242", "123"), wantErr: true},
		{name: "cvc too short", req: cardRequest("4242424242424242", "12"), wantErr: true},
		{name: "cvc too long", req: cardRequest("4242424242424242", "12345"), wantErr: true},
		{
			name: "missing card fields",
			req: &dto.CheckoutRequest{
				PeriodDays:    14,
				PaymentMethod: "card",
				BuyerFullName: "Jonas Jonaitis",
				BuyerEmail:    "jonas@example.com",
			},
			wantErr: true,
		},
		{
			name: "bank transfer skips card validation",
			req: &dto.CheckoutRequest{
				PeriodDays:    14,
				PaymentMethod: "bank_transfer",
				BuyerFullName: "Jonas Jonaitis",
				BuyerEmail:    "jonas@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePaymentDetails(tt.req)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransactionReferenceFormat(t *testing.T) {
	id := uuid.MustParse("1f2a3b4c-5d6e-7a8b-9c0d-1e2f3a4b5c6d")
	paidAt := time.Date(2024, time.June, 15, 15, 30, 45, 0, time.UTC)

	ref := transactionReference(id, paidAt)

	if !strings.HasPrefix(ref, "SIM-") {
		t.Errorf("ref = %q, want SIM- prefix", ref)
	}
	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		t.Fatalf("ref = %q, want SIM-<digits>-<time>", ref)
	}
	if len(parts[1]) != 6 {
		t.Errorf("digit segment = %q, want 6 characters", parts[1])
	}
	// First six digits of the uuid string: 1, 2, 3, 4, 5, 6.
	if parts[1] != "123456" {
		t.Errorf("digit segment = %q, want 123456", parts[1])
	}
	if parts[2] != "153045" {
		t.Errorf("time segment = %q, want 153045", parts[2])
	}
}

func TestTransactionReferencePadsShortIds(t *testing.T) {
	// A uuid with fewer than six digit characters pads with zeros.
	id := uuid.MustParse("abcdefab-cdef-4bcd-8bcd-efabcdefabc1")
	paidAt := time.Date(2024, time.June, 15, 8, 5, 9, 0, time.UTC)

	ref := transactionReference(id, paidAt)
	parts := strings.Split(ref, "-")
	if len(parts) != 3 || len(parts[1]) != 6 {
		t.Fatalf("ref = %q, want padded 6-digit segment", ref)
	}
	if parts[2] != "080509" {
		t.Errorf("time segment = %q, want 080509", parts[2])
	}
}

func TestSnapshotMealsOrdering(t *testing.T) {
	meals := []entity.PlanMeal{
		{Id: uuid.New(), DayOfWeek: "tuesday", MealType: "breakfast", Title: "Žalioji smuči"},
		{Id: uuid.New(), DayOfWeek: "monday", MealType: "lunch", Title: "Kalakutienos salotos", Calories: intPtr(430)},
		{Id: uuid.New(), DayOfWeek: "monday", MealType: "breakfast", Title: "Chia pudingas"},
	}

	items := snapshotMeals(meals)

	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	wantTitles := []string{"Chia pudingas", "Kalakutienos salotos", "Žalioji smuči"}
	for i, want := range wantTitles {
		if items[i].MealTitle != want {
			t.Errorf("items[%d].MealTitle = %q, want %q", i, items[i].MealTitle, want)
		}
	}
	if items[1].Calories == nil || *items[1].Calories != 430 {
		t.Error("macro values must carry over into the snapshot")
	}

	// Source slice stays untouched.
	if meals[0].DayOfWeek != "tuesday" {
		t.Error("snapshotMeals must not reorder the input slice")
	}
}
