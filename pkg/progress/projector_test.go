package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/entity"
)

func paid(planId uuid.UUID, periodDays int, paidAt time.Time) *entity.PlanPurchase {
	return &entity.PlanPurchase{
		Id:               uuid.New(),
		UserId:           uuid.New(),
		PlanId:           planId,
		PlanNameSnapshot: "FitBite Smart planas",
		PeriodDays:       periodDays,
		Status:           entity.PurchaseStatusPaid,
		PaidAt:           &paidAt,
		CreatedAt:        paidAt,
	}
}

func TestProjectMidway(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 14, start)
	now := start.Add(7 * 24 * time.Hour)

	p := Project(purchase, now)
	if p == nil {
		t.Fatal("expected projection")
	}

	if p.TotalDays != 14 {
		t.Errorf("TotalDays = %d, want 14", p.TotalDays)
	}
	if p.Percent == nil || *p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}
	if p.RemainingDays != 7 {
		t.Errorf("RemainingDays = %d, want 7", p.RemainingDays)
	}
	if p.CompletedDays != 7 {
		t.Errorf("CompletedDays = %d, want 7", p.CompletedDays)
	}
	if p.IsExpired {
		t.Error("IsExpired = true midway through the period")
	}
	wantFinish := start.Add(14 * 24 * time.Hour)
	if p.ExpectedFinish == nil || !p.ExpectedFinish.Equal(wantFinish) {
		t.Errorf("ExpectedFinish = %v, want %v", p.ExpectedFinish, wantFinish)
	}
}

func TestProjectPercentRounding(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 3, start)
	now := start.Add(24 * time.Hour)

	p := Project(purchase, now)
	if p.Percent == nil {
		t.Fatal("expected percent")
	}
	// 1/3 of the way in, rounded to 4 decimals.
	if *p.Percent != 0.3333 {
		t.Errorf("Percent = %v, want 0.3333", *p.Percent)
	}
}

func TestProjectPartialDayRemaining(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 14, start)
	// 6.5 days in: 7.5 days left, which counts as 8 whole remaining days.
	now := start.Add(6*24*time.Hour + 12*time.Hour)

	p := Project(purchase, now)
	if p.RemainingDays != 8 {
		t.Errorf("RemainingDays = %d, want 8", p.RemainingDays)
	}
	if p.CompletedDays != 6 {
		t.Errorf("CompletedDays = %d, want 6", p.CompletedDays)
	}
}

func TestProjectExpired(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 14, start)
	now := start.Add(20 * 24 * time.Hour)

	p := Project(purchase, now)
	if p.Percent == nil || *p.Percent != 1.0 {
		t.Errorf("Percent = %v, want 1.0", p.Percent)
	}
	if p.RemainingDays != 0 {
		t.Errorf("RemainingDays = %d, want 0", p.RemainingDays)
	}
	if p.CompletedDays != 14 {
		t.Errorf("CompletedDays = %d, want 14", p.CompletedDays)
	}
	if !p.IsExpired {
		t.Error("IsExpired = false past the period end")
	}
}

func TestProjectBeforeStartClampsToZero(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 14, start)
	now := start.Add(-time.Hour)

	p := Project(purchase, now)
	if p.Percent == nil || *p.Percent != 0 {
		t.Errorf("Percent = %v, want 0", p.Percent)
	}
	if p.RemainingDays != 14 {
		t.Errorf("RemainingDays = %d, want 14", p.RemainingDays)
	}
}

func TestProjectNonPaidShowsIdentityOnly(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 14, start)
	purchase.Status = entity.PurchaseStatusCanceled

	p := Project(purchase, start.Add(7*24*time.Hour))
	if p == nil {
		t.Fatal("expected projection with plan identity")
	}
	if p.PlanName != "FitBite Smart planas" {
		t.Errorf("PlanName = %q", p.PlanName)
	}
	if p.Percent != nil {
		t.Errorf("Percent = %v, want nil for canceled purchase", *p.Percent)
	}
	if p.Status != string(entity.PurchaseStatusCanceled) {
		t.Errorf("Status = %s, want canceled", p.Status)
	}
}

func TestProjectZeroPeriod(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paid(uuid.New(), 0, start)

	p := Project(purchase, start)
	if p == nil {
		t.Fatal("expected projection")
	}
	if p.Percent != nil || p.StartedAt != nil {
		t.Error("zero-period purchase must not report progress")
	}
}

func TestProjectNil(t *testing.T) {
	if Project(nil, time.Now()) != nil {
		t.Error("Project(nil) should be nil")
	}
}

func TestPickPrecedence(t *testing.T) {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	currentPlan := uuid.New()
	otherPlan := uuid.New()

	currentPaid := paid(currentPlan, 14, base)
	newerPaid := paid(otherPlan, 14, base.Add(48*time.Hour))
	canceled := paid(otherPlan, 14, base.Add(96*time.Hour))
	canceled.Status = entity.PurchaseStatusCanceled
	pending := paid(otherPlan, 14, base.Add(120*time.Hour))
	pending.Status = entity.PurchaseStatusPending

	t.Run("paid purchase of current plan wins", func(t *testing.T) {
		got := Pick([]*entity.PlanPurchase{newerPaid, currentPaid, canceled}, &currentPlan)
		if got != currentPaid {
			t.Errorf("Pick = %v, want the current-plan purchase", got.Id)
		}
	})

	t.Run("latest paid without current plan match", func(t *testing.T) {
		got := Pick([]*entity.PlanPurchase{currentPaid, newerPaid}, nil)
		if got != newerPaid {
			t.Errorf("Pick = %v, want the most recent paid purchase", got.Id)
		}
	})

	t.Run("canceled purchase as last resort", func(t *testing.T) {
		got := Pick([]*entity.PlanPurchase{canceled, pending}, nil)
		if got != canceled {
			t.Error("Pick should fall back to the most recent canceled purchase")
		}
	})

	t.Run("pending purchases never selected", func(t *testing.T) {
		if got := Pick([]*entity.PlanPurchase{pending}, nil); got != nil {
			t.Errorf("Pick = %v, want nil", got.Id)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Pick(nil, &currentPlan); got != nil {
			t.Errorf("Pick = %v, want nil", got.Id)
		}
	})
}
