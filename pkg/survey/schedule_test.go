package survey

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/entity"
)

func paidPurchase(periodDays int, paidAt time.Time) *entity.PlanPurchase {
	return &entity.PlanPurchase{
		Id:               uuid.New(),
		UserId:           uuid.New(),
		PlanId:           uuid.New(),
		PlanNameSnapshot: "FitBite Slim planas",
		PeriodDays:       periodDays,
		Status:           entity.PurchaseStatusPaid,
		PaidAt:           &paidAt,
		CreatedAt:        paidAt,
	}
}

func TestBuildScheduleOffsets(t *testing.T) {
	tests := []struct {
		name        string
		periodDays  int
		wantOffsets []int
	}{
		{name: "14 day period", periodDays: 14, wantOffsets: []int{5, 10, 14}},
		{name: "7 day period", periodDays: 7, wantOffsets: []int{5, 7}},
		{name: "5 day period final only", periodDays: 5, wantOffsets: []int{5}},
		{name: "3 day period final only", periodDays: 3, wantOffsets: []int{3}},
		{name: "30 day period", periodDays: 30, wantOffsets: []int{5, 10, 15, 20, 25, 30}},
	}

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase := paidPurchase(tt.periodDays, now)
			surveys := BuildSchedule(purchase, now)

			if len(surveys) != len(tt.wantOffsets) {
				t.Fatalf("len = %d, want %d", len(surveys), len(tt.wantOffsets))
			}
			for i, want := range tt.wantOffsets {
				if surveys[i].DayOffset != want {
					t.Errorf("surveys[%d].DayOffset = %d, want %d", i, surveys[i].DayOffset, want)
				}
				wantType := entity.SurveyTypeProgress
				if want == tt.periodDays {
					wantType = entity.SurveyTypeFinal
				}
				if surveys[i].SurveyType != wantType {
					t.Errorf("surveys[%d].SurveyType = %s, want %s", i, surveys[i].SurveyType, wantType)
				}
			}
		})
	}
}

func TestBuildScheduleInitialStatuses(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paidPurchase(14, start)

	// Eleven days in: day-5 and day-10 checkpoints are due, day-14 is not.
	now := start.Add(11 * 24 * time.Hour)
	surveys := BuildSchedule(purchase, now)

	wantStatuses := []entity.SurveyStatus{
		entity.SurveyStatusScheduled,
		entity.SurveyStatusScheduled,
		entity.SurveyStatusCancelled,
	}
	for i, want := range wantStatuses {
		if surveys[i].Status != want {
			t.Errorf("surveys[%d].Status = %s, want %s", i, surveys[i].Status, want)
		}
	}

	wantAt := start.Add(5 * 24 * time.Hour)
	if !surveys[0].ScheduledAt.Equal(wantAt) {
		t.Errorf("surveys[0].ScheduledAt = %v, want %v", surveys[0].ScheduledAt, wantAt)
	}
}

func TestBuildScheduleNoPeriod(t *testing.T) {
	purchase := paidPurchase(0, time.Now())
	if surveys := BuildSchedule(purchase, time.Now()); surveys != nil {
		t.Errorf("expected nil schedule for zero period, got %d surveys", len(surveys))
	}
}

func TestRecomputeArmsDueProgressSurvey(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	cancelled := now.Add(-time.Hour)
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeProgress,
		ScheduledAt: now.Add(-24 * time.Hour),
		Status:      entity.SurveyStatusCancelled,
		CancelledAt: &cancelled,
	}

	changed, finalActivation := Recompute(s, now)
	if !changed || finalActivation {
		t.Fatalf("Recompute = (%v, %v), want (true, false)", changed, finalActivation)
	}
	if s.Status != entity.SurveyStatusScheduled {
		t.Errorf("Status = %s, want scheduled", s.Status)
	}
	if s.CancelledAt != nil {
		t.Error("CancelledAt should be cleared when the survey arms")
	}

	// Second pass is a no-op.
	changed, finalActivation = Recompute(s, now)
	if changed || finalActivation {
		t.Errorf("second Recompute = (%v, %v), want (false, false)", changed, finalActivation)
	}
}

func TestRecomputeDisarmsFutureProgressSurvey(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeProgress,
		ScheduledAt: now.Add(48 * time.Hour),
		Status:      entity.SurveyStatusScheduled,
	}

	changed, _ := Recompute(s, now)
	if !changed {
		t.Fatal("expected change")
	}
	if s.Status != entity.SurveyStatusCancelled {
		t.Errorf("Status = %s, want cancelled", s.Status)
	}
	if s.CancelledAt == nil {
		t.Error("CancelledAt should be populated when the survey disarms")
	}
}

func TestRecomputeCompletedNeverChanges(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	completedAt := now.Add(-time.Hour)
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeFinal,
		ScheduledAt: now.Add(-24 * time.Hour),
		Status:      entity.SurveyStatusCompleted,
		CompletedAt: &completedAt,
	}

	changed, finalActivation := Recompute(s, now)
	if changed || finalActivation {
		t.Errorf("Recompute = (%v, %v), want (false, false)", changed, finalActivation)
	}
	if s.Status != entity.SurveyStatusCompleted {
		t.Errorf("Status = %s, want completed", s.Status)
	}
}

func TestRecomputeDueFinalRequestsActivation(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeFinal,
		ScheduledAt: now.Add(-time.Hour),
		Status:      entity.SurveyStatusCancelled,
	}

	changed, finalActivation := Recompute(s, now)
	if changed || !finalActivation {
		t.Fatalf("Recompute = (%v, %v), want (false, true)", changed, finalActivation)
	}
	// The survey itself is untouched; ArmFinal owns the transition.
	if s.Status != entity.SurveyStatusCancelled {
		t.Errorf("Status = %s, want cancelled until ArmFinal runs", s.Status)
	}
}

func TestRecomputeArmedFinalStaysArmed(t *testing.T) {
	// A final survey armed by early cancellation sits before its original
	// schedule; it must not disarm again.
	now := time.Date(2024, time.June, 4, 10, 0, 0, 0, time.UTC)
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeFinal,
		ScheduledAt: now.Add(-time.Hour),
		Status:      entity.SurveyStatusScheduled,
	}

	changed, finalActivation := Recompute(s, now)
	if changed || finalActivation {
		t.Errorf("Recompute = (%v, %v), want (false, false)", changed, finalActivation)
	}
}

func TestArmFinalEarlyCancellation(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	trigger := start.Add(3 * 24 * time.Hour)
	completedAt := start
	s := &entity.ProgressSurvey{
		SurveyType:  entity.SurveyTypeFinal,
		DayOffset:   14,
		ScheduledAt: start.Add(14 * 24 * time.Hour),
		Status:      entity.SurveyStatusCancelled,
		CompletedAt: &completedAt,
	}

	ArmFinal(s, start, 14, trigger)

	// Cancelling at day 3 of 14 keeps the offset at the full period.
	if s.DayOffset != 14 {
		t.Errorf("DayOffset = %d, want 14", s.DayOffset)
	}
	if !s.ScheduledAt.Equal(trigger) {
		t.Errorf("ScheduledAt = %v, want %v", s.ScheduledAt, trigger)
	}
	if s.Status != entity.SurveyStatusScheduled {
		t.Errorf("Status = %s, want scheduled", s.Status)
	}
	if s.CompletedAt != nil || s.CancelledAt != nil {
		t.Error("completed/cancelled stamps must be cleared")
	}
}

func TestArmFinalPastPeriodUsesElapsedDays(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	trigger := start.Add(20 * 24 * time.Hour)
	s := &entity.ProgressSurvey{SurveyType: entity.SurveyTypeFinal}

	ArmFinal(s, start, 14, trigger)

	if s.DayOffset != 20 {
		t.Errorf("DayOffset = %d, want 20", s.DayOffset)
	}
}

func TestNewFinal(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	purchase := paidPurchase(14, start)
	trigger := start.Add(2 * 24 * time.Hour)

	s := NewFinal(purchase, start, trigger)

	if s.SurveyType != entity.SurveyTypeFinal {
		t.Errorf("SurveyType = %s, want final", s.SurveyType)
	}
	if s.PurchaseId != purchase.Id || s.UserId != purchase.UserId {
		t.Error("final survey must reference the purchase and its owner")
	}
	if s.DayOffset != 14 {
		t.Errorf("DayOffset = %d, want 14", s.DayOffset)
	}
	if s.Status != entity.SurveyStatusScheduled {
		t.Errorf("Status = %s, want scheduled", s.Status)
	}
}
