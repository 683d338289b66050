package progress

import (
	"math"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/entity"
)

// Projection is the user-facing view of how far a subscription has run.
// Derived purely from purchase timestamps; nothing here is persisted.
type Projection struct {
	PlanId         string     `json:"plan_id"`
	PlanName       string     `json:"plan_name"`
	StartedAt      *time.Time `json:"started_at"`
	ExpectedFinish *time.Time `json:"expected_finish"`
	TotalDays      int        `json:"total_days"`
	CompletedDays  int        `json:"completed_days"`
	RemainingDays  int        `json:"remaining_days"`
	Percent        *float64   `json:"percent"`
	IsExpired      bool       `json:"is_expired"`
	Status         string     `json:"status"`
}

// Project computes the progress view for one purchase. Returns nil when the
// purchase cannot anchor a timeline (no period or no start time). A canceled
// purchase surfaces plan identity but no percent.
func Project(purchase *entity.PlanPurchase, now time.Time) *Projection {
	if purchase == nil {
		return nil
	}

	projection := &Projection{
		PlanId:   purchase.PlanId.String(),
		PlanName: purchase.PlanNameSnapshot,
		Status:   string(purchase.Status),
	}

	if purchase.Status != entity.PurchaseStatusPaid {
		return projection
	}

	start := purchase.StartTime()
	if purchase.PeriodDays <= 0 || start == nil {
		return projection
	}

	totalDays := purchase.PeriodDays
	finish := start.Add(time.Duration(totalDays) * 24 * time.Hour)

	elapsed := now.Sub(*start).Seconds()
	total := finish.Sub(*start).Seconds()

	percent := clamp(elapsed/total, 0, 1)
	percent = math.Round(percent*10000) / 10000

	remaining := int(math.Ceil(finish.Sub(now).Seconds() / 86400))
	if remaining < 0 {
		remaining = 0
	}
	if remaining > totalDays {
		remaining = totalDays
	}

	completed := totalDays - remaining
	if completed < 0 {
		completed = 0
	}
	if completed > totalDays {
		completed = totalDays
	}

	projection.StartedAt = start
	projection.ExpectedFinish = &finish
	projection.TotalDays = totalDays
	projection.CompletedDays = completed
	projection.RemainingDays = remaining
	projection.Percent = &percent
	projection.IsExpired = remaining == 0 && percent >= 1.0

	return projection
}

// Pick selects the purchase a progress report should be based on: a paid
// purchase for the user's currently selected plan wins, then the most recent
// paid purchase, then the most recent canceled one as a last resort.
func Pick(purchases []*entity.PlanPurchase, currentPlanId *uuid.UUID) *entity.PlanPurchase {
	var paid []*entity.PlanPurchase
	var canceled []*entity.PlanPurchase
	for _, p := range purchases {
		switch p.Status {
		case entity.PurchaseStatusPaid:
			paid = append(paid, p)
		case entity.PurchaseStatusCanceled:
			canceled = append(canceled, p)
		}
	}

	if currentPlanId != nil {
		for _, p := range paid {
			if p.PlanId == *currentPlanId {
				return p
			}
		}
	}

	if latest := latestByStart(paid); latest != nil {
		return latest
	}
	return latestByStart(canceled)
}

func latestByStart(purchases []*entity.PlanPurchase) *entity.PlanPurchase {
	var best *entity.PlanPurchase
	var bestKey time.Time
	for _, p := range purchases {
		key := p.CreatedAt
		if p.PaidAt != nil {
			key = *p.PaidAt
		}
		if best == nil || key.After(bestKey) {
			best = p
			bestKey = key
		}
	}
	return best
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
