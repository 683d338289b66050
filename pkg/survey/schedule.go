package survey

import (
	"time"

	"fitbite-be/internal/entity"
)

// BuildSchedule generates the checkpoint surveys for a purchase: offsets at
// day 5, 10, 15, … strictly below the period length, plus the final checkpoint
// at exactly period_days. Checkpoints whose time has not yet arrived start as
// cancelled (not yet due) and arm via Recompute once the clock catches up.
func BuildSchedule(purchase *entity.PlanPurchase, now time.Time) []*entity.ProgressSurvey {
	if purchase.PeriodDays <= 0 {
		return nil
	}
	start := purchase.StartTime()
	if start == nil {
		return nil
	}

	var offsets []int
	for day := 5; day < purchase.PeriodDays; day += 5 {
		offsets = append(offsets, day)
	}
	offsets = append(offsets, purchase.PeriodDays)

	surveys := make([]*entity.ProgressSurvey, 0, len(offsets))
	for _, offset := range offsets {
		scheduledAt := start.Add(time.Duration(offset) * 24 * time.Hour)
		surveyType := entity.SurveyTypeProgress
		if offset == purchase.PeriodDays {
			surveyType = entity.SurveyTypeFinal
		}
		status := entity.SurveyStatusCancelled
		if !scheduledAt.After(now) {
			status = entity.SurveyStatusScheduled
		}
		surveys = append(surveys, &entity.ProgressSurvey{
			UserId:           purchase.UserId,
			PurchaseId:       purchase.Id,
			PlanId:           purchase.PlanId,
			PlanNameSnapshot: purchase.PlanNameSnapshot,
			SurveyType:       surveyType,
			DayOffset:        offset,
			ScheduledAt:      scheduledAt,
			Status:           status,
		})
	}
	return surveys
}

// Recompute derives the survey's status from the wall clock. It mutates the
// survey in place and reports whether anything changed so callers can persist.
// A final survey whose time has arrived is not flipped here; it must go
// through ArmFinal, which the finalActivation flag requests.
func Recompute(s *entity.ProgressSurvey, now time.Time) (changed bool, finalActivation bool) {
	if s.Status == entity.SurveyStatusCompleted {
		return false, false
	}

	due := !s.ScheduledAt.After(now)

	if due && s.Status != entity.SurveyStatusScheduled {
		if s.SurveyType == entity.SurveyTypeFinal {
			return false, true
		}
		s.Status = entity.SurveyStatusScheduled
		s.CancelledAt = nil
		return true, false
	}

	// Only progress surveys disarm again; an armed final survey stays armed.
	if !due && s.Status == entity.SurveyStatusScheduled && s.SurveyType == entity.SurveyTypeProgress {
		s.Status = entity.SurveyStatusCancelled
		cancelled := now
		s.CancelledAt = &cancelled
		return true, false
	}

	return false, false
}

// ArmFinal forces the final survey into the scheduled state at the trigger
// instant, pushing its day offset to at least the full period. Used both when
// the final checkpoint comes due naturally and when a purchase is cancelled
// early, so the exit survey fires immediately instead of at period end.
func ArmFinal(s *entity.ProgressSurvey, start time.Time, periodDays int, trigger time.Time) {
	elapsed := int(trigger.Sub(start).Hours() / 24)
	if periodDays < 0 {
		periodDays = 0
	}
	dayOffset := elapsed
	if periodDays > dayOffset {
		dayOffset = periodDays
	}
	s.DayOffset = dayOffset
	s.ScheduledAt = trigger
	s.Status = entity.SurveyStatusScheduled
	s.CompletedAt = nil
	s.CancelledAt = nil
}

// NewFinal builds a final survey from scratch for purchases that somehow lack
// one when the activation procedure runs.
func NewFinal(purchase *entity.PlanPurchase, start time.Time, trigger time.Time) *entity.ProgressSurvey {
	s := &entity.ProgressSurvey{
		UserId:           purchase.UserId,
		PurchaseId:       purchase.Id,
		PlanId:           purchase.PlanId,
		PlanNameSnapshot: purchase.PlanNameSnapshot,
		SurveyType:       entity.SurveyTypeFinal,
	}
	ArmFinal(s, start, purchase.PeriodDays, trigger)
	return s
}
