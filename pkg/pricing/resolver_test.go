package pricing

import (
	"errors"
	"testing"

	"fitbite-be/internal/entity"
)

func testPlan() *entity.NutritionPlan {
	return &entity.NutritionPlan{
		Name: "FitBite Smart planas",
		PricingOptions: []entity.PricingOption{
			{PeriodDays: 14, PriceCents: 25830, Currency: "EUR", IsActive: true},
			{PeriodDays: 7, PriceCents: 13633, Currency: "EUR", IsActive: true},
			{PeriodDays: 30, PriceCents: 55000, Currency: "EUR", IsActive: false},
			{PeriodDays: 1, PriceCents: 2050, Currency: "EUR", IsActive: true},
		},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		periodDays int
		wantCents  int
		wantErr    bool
	}{
		{name: "exact match 7 days", periodDays: 7, wantCents: 13633},
		{name: "exact match 14 days", periodDays: 14, wantCents: 25830},
		{name: "inactive option is not offered", periodDays: 30, wantErr: true},
		{name: "unknown period", periodDays: 21, wantErr: true},
		{name: "zero period", periodDays: 0, wantErr: true},
		{name: "negative period", periodDays: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option, err := Resolve(testPlan(), tt.periodDays)

			if tt.wantErr {
				if !errors.Is(err, ErrNotOffered) {
					t.Errorf("err = %v, want ErrNotOffered", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if option.PriceCents != tt.wantCents {
				t.Errorf("PriceCents = %d, want %d", option.PriceCents, tt.wantCents)
			}
			if option.PeriodDays != tt.periodDays {
				t.Errorf("PeriodDays = %d, want %d", option.PeriodDays, tt.periodDays)
			}
		})
	}
}

func TestActiveOptionsSortedAndFiltered(t *testing.T) {
	options := ActiveOptions(testPlan())

	if len(options) != 3 {
		t.Fatalf("len = %d, want 3 (inactive dropped)", len(options))
	}
	wantPeriods := []int{1, 7, 14}
	for i, want := range wantPeriods {
		if options[i].PeriodDays != want {
			t.Errorf("options[%d].PeriodDays = %d, want %d", i, options[i].PeriodDays, want)
		}
	}
}

func TestActiveOptionsNilPlan(t *testing.T) {
	if got := ActiveOptions(nil); got != nil {
		t.Errorf("ActiveOptions(nil) = %v, want nil", got)
	}
}
