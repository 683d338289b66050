package discount

import (
	"errors"
	"testing"
	"time"

	"fitbite-be/internal/entity"
)

func newTestEngine() *Engine {
	return NewEngine(
		map[string]float64{"labas10": 0.10, "VASARA20": 0.20},
		"BIRTHDAY15",
		0.15,
		0.15,
	)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestComputeFirstPurchase(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	result, err := engine.Compute(user, 1999, nil, 0, date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Applied == nil {
		t.Fatal("expected first-purchase discount to apply")
	}
	if result.Applied.Label != "Pirmo pirkimo akcija" {
		t.Errorf("Label = %q", result.Applied.Label)
	}
	// 1999 * 0.15 = 299.85, rounds half-up to 300
	if result.DiscountAmountCents != 300 {
		t.Errorf("DiscountAmountCents = %d, want 300", result.DiscountAmountCents)
	}
	if result.FinalPriceCents != 1699 {
		t.Errorf("FinalPriceCents = %d, want 1699", result.FinalPriceCents)
	}
	if result.Applied.Code != nil {
		t.Errorf("first-purchase discount should carry no code, got %v", *result.Applied.Code)
	}
}

func TestComputeNoDiscountAfterFirstPurchase(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	result, err := engine.Compute(user, 1999, nil, 3, date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Applied != nil {
		t.Errorf("expected no discount, got %+v", result.Applied)
	}
	if result.FinalPriceCents != 1999 {
		t.Errorf("FinalPriceCents = %d, want 1999", result.FinalPriceCents)
	}
}

func TestComputeGenericCode(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	tests := []struct {
		name       string
		code       string
		wantAmount int
		wantLabel  string
	}{
		{name: "uppercase code", code: "VASARA20", wantAmount: 400, wantLabel: "Nuolaidos kodas VASARA20"},
		{name: "lowercase input normalized", code: "labas10", wantAmount: 200, wantLabel: "Nuolaidos kodas LABAS10"},
		{name: "surrounding whitespace trimmed", code: "  VASARA20  ", wantAmount: 400, wantLabel: "Nuolaidos kodas VASARA20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Compute(user, 2000, strPtr(tt.code), 0, date(2024, time.June, 1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Applied == nil {
				t.Fatal("expected discount to apply")
			}
			if result.Applied.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", result.Applied.Label, tt.wantLabel)
			}
			if result.DiscountAmountCents != tt.wantAmount {
				t.Errorf("DiscountAmountCents = %d, want %d", result.DiscountAmountCents, tt.wantAmount)
			}
		})
	}
}

func TestComputeExplicitCodeBeatsFirstPurchase(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	// priorPurchases == 0, but an explicit code is given: the code wins and
	// the automatic 15% never stacks on top.
	result, err := engine.Compute(user, 2000, strPtr("LABAS10"), 0, date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Applied == nil || result.Applied.Percent != 0.10 {
		t.Fatalf("expected 10%% code discount, got %+v", result.Applied)
	}
	if result.FinalPriceCents != 1800 {
		t.Errorf("FinalPriceCents = %d, want 1800", result.FinalPriceCents)
	}
}

func TestComputeUnknownCode(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	_, err := engine.Compute(user, 2000, strPtr("NEEGZISTUOJA"), 0, date(2024, time.June, 1))
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("err = %v, want ErrUnknownCode", err)
	}
}

func TestComputeBirthdayCode(t *testing.T) {
	engine := newTestEngine()
	birthDate := date(1993, time.June, 10)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{name: "5 days after anniversary", now: date(2024, time.June, 15)},
		{name: "7 days before anniversary", now: date(2024, time.June, 3)},
		{name: "exactly on anniversary", now: date(2024, time.June, 10)},
		{name: "7 days after anniversary", now: date(2024, time.June, 17)},
		{name: "8 days out fails", now: date(2024, time.June, 20), wantErr: ErrCodeNotActive},
		{name: "months away fails", now: date(2024, time.January, 15), wantErr: ErrCodeNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &entity.User{Email: "jonas@example.com", BirthDate: &birthDate}
			result, err := engine.Compute(user, 2000, strPtr("BIRTHDAY15"), 5, tt.now)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Applied == nil || result.Applied.Label != "Gimtadienio nuolaida" {
				t.Fatalf("expected birthday discount, got %+v", result.Applied)
			}
			if result.DiscountAmountCents != 300 {
				t.Errorf("DiscountAmountCents = %d, want 300", result.DiscountAmountCents)
			}
		})
	}
}

func TestComputeBirthdayCodeRequiresBirthDate(t *testing.T) {
	engine := newTestEngine()
	user := &entity.User{Email: "jonas@example.com"}

	_, err := engine.Compute(user, 2000, strPtr("BIRTHDAY15"), 5, date(2024, time.June, 15))
	if !errors.Is(err, ErrBirthDateMissing) {
		t.Errorf("err = %v, want ErrBirthDateMissing", err)
	}
}

func TestComputeBirthdayLeapDay(t *testing.T) {
	engine := newTestEngine()
	birthDate := date(2000, time.February, 29)
	user := &entity.User{Email: "jonas@example.com", BirthDate: &birthDate}

	// 2023 is not a leap year: the anniversary collapses to Feb 28.
	result, err := engine.Compute(user, 2000, strPtr("BIRTHDAY15"), 5, date(2023, time.February, 26))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Applied == nil || result.Applied.Label != "Gimtadienio nuolaida" {
		t.Fatalf("expected birthday discount, got %+v", result.Applied)
	}
}

func TestNewEngineNormalizesCodes(t *testing.T) {
	engine := NewEngine(map[string]float64{" vasara20 ": 0.20, "BAD": -0.5}, "bday", 0.15, 0.15)

	if _, ok := engine.genericCodes["VASARA20"]; !ok {
		t.Error("expected VASARA20 after normalization")
	}
	if _, ok := engine.genericCodes["BAD"]; ok {
		t.Error("negative percent entries must be dropped")
	}
	if engine.birthdayCode != "BDAY" {
		t.Errorf("birthdayCode = %q, want BDAY", engine.birthdayCode)
	}
}
