package pricing

import (
	"errors"
	"sort"

	"fitbite-be/internal/entity"
)

// ErrNotOffered signals that the plan has no active pricing option for the
// requested period. Callers must reject checkout instead of substituting a price.
var ErrNotOffered = errors.New("plan is not offered for the requested period")

// ActiveOptions returns the plan's active pricing options ordered by period length.
func ActiveOptions(plan *entity.NutritionPlan) []entity.PricingOption {
	if plan == nil {
		return nil
	}
	options := make([]entity.PricingOption, 0, len(plan.PricingOptions))
	for _, option := range plan.PricingOptions {
		if option.IsActive {
			options = append(options, option)
		}
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].PeriodDays < options[j].PeriodDays
	})
	return options
}

// Resolve finds the active pricing option matching the requested period exactly.
// No interpolation between offered periods.
func Resolve(plan *entity.NutritionPlan, periodDays int) (*entity.PricingOption, error) {
	if periodDays <= 0 {
		return nil, ErrNotOffered
	}
	for _, option := range ActiveOptions(plan) {
		if option.PeriodDays == periodDays {
			resolved := option
			return &resolved, nil
		}
	}
	return nil, ErrNotOffered
}
