package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fitbite-be/internal/entity"
)

const birthdayWindowDays = 7

var (
	ErrBirthDateMissing = errors.New("gimtadienio nuolaida galima tik nurodžius gimimo datą profilyje")
	ErrCodeNotActive    = errors.New("gimtadienio nuolaidos kodas negalioja šiuo metu")
	ErrUnknownCode      = errors.New("netinkamas nuolaidos kodas")
)

// Applied describes the single discount that won.
type Applied struct {
	Label       string
	Code        *string
	Percent     float64
	AmountCents int
}

// Computation is the full pricing outcome for one checkout attempt.
type Computation struct {
	BasePriceCents      int
	FinalPriceCents     int
	DiscountAmountCents int
	Applied             *Applied
}

// Engine computes at most one discount per purchase. Explicit codes take
// precedence over the automatic first-purchase discount; the paths never combine.
type Engine struct {
	genericCodes         map[string]float64
	birthdayCode         string
	birthdayPercent      float64
	firstPurchasePercent float64
}

func NewEngine(genericCodes map[string]float64, birthdayCode string, birthdayPercent, firstPurchasePercent float64) *Engine {
	normalized := make(map[string]float64, len(genericCodes))
	for code, percent := range genericCodes {
		if percent < 0 {
			continue
		}
		normalized[strings.ToUpper(strings.TrimSpace(code))] = percent
	}
	return &Engine{
		genericCodes:         normalized,
		birthdayCode:         strings.ToUpper(strings.TrimSpace(birthdayCode)),
		birthdayPercent:      birthdayPercent,
		firstPurchasePercent: firstPurchasePercent,
	}
}

// Compute resolves the applicable discount for a purchase attempt.
// priorPurchases is the user's total purchase count of any status.
func (e *Engine) Compute(user *entity.User, basePriceCents int, code *string, priorPurchases int64, now time.Time) (*Computation, error) {
	normalized := normalizeCode(code)
	var applied *Applied

	switch {
	case normalized != "":
		var err error
		applied, err = e.applyCode(user, basePriceCents, normalized, now)
		if err != nil {
			return nil, err
		}
	case priorPurchases == 0:
		applied = &Applied{
			Label:       "Pirmo pirkimo akcija",
			Percent:     e.firstPurchasePercent,
			AmountCents: amountFor(basePriceCents, e.firstPurchasePercent),
		}
	}

	discountAmount := 0
	if applied != nil {
		discountAmount = applied.AmountCents
	}
	finalPrice := basePriceCents - discountAmount
	if finalPrice < 0 {
		finalPrice = 0
	}

	return &Computation{
		BasePriceCents:      basePriceCents,
		FinalPriceCents:     finalPrice,
		DiscountAmountCents: discountAmount,
		Applied:             applied,
	}, nil
}

func (e *Engine) applyCode(user *entity.User, basePriceCents int, code string, now time.Time) (*Applied, error) {
	if code == e.birthdayCode {
		if user.BirthDate == nil {
			return nil, ErrBirthDateMissing
		}
		if !withinBirthdayWindow(*user.BirthDate, now) {
			return nil, ErrCodeNotActive
		}
		return &Applied{
			Label:       "Gimtadienio nuolaida",
			Code:        &code,
			Percent:     e.birthdayPercent,
			AmountCents: amountFor(basePriceCents, e.birthdayPercent),
		}, nil
	}

	percent, ok := e.genericCodes[code]
	if !ok {
		return nil, ErrUnknownCode
	}
	return &Applied{
		Label:       fmt.Sprintf("Nuolaidos kodas %s", code),
		Code:        &code,
		Percent:     percent,
		AmountCents: amountFor(basePriceCents, percent),
	}, nil
}

func normalizeCode(code *string) string {
	if code == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*code))
}

// amountFor rounds half-up to the nearest cent via fixed-point decimals,
// never binary floats.
func amountFor(basePriceCents int, percent float64) int {
	amount := decimal.NewFromInt(int64(basePriceCents)).
		Mul(decimal.NewFromFloat(percent)).
		Round(0)
	return int(amount.IntPart())
}

// withinBirthdayWindow reports whether reference falls within ±7 days of the
// birth date anniversary in the previous, current, or next calendar year.
// Feb 29 birth dates collapse to Feb 28 in non-leap years.
func withinBirthdayWindow(birthDate, reference time.Time) bool {
	ref := truncateToDay(reference)
	for _, year := range []int{ref.Year() - 1, ref.Year(), ref.Year() + 1} {
		candidate := anniversaryInYear(birthDate, year)
		diff := candidate.Sub(ref).Hours() / 24
		if diff < 0 {
			diff = -diff
		}
		if diff <= birthdayWindowDays {
			return true
		}
	}
	return false
}

func anniversaryInYear(birthDate time.Time, year int) time.Time {
	month, day := birthDate.Month(), birthDate.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
