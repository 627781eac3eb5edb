package engine

import (
	"fmt"
	"math"
	"time"
)

type InsuranceTier string

const (
	InsuranceTierBasic    InsuranceTier = "basic"
	InsuranceTierStandard InsuranceTier = "standard"
	InsuranceTierPremium  InsuranceTier = "premium"
)

// Per-day insurance rates, in the same currency unit as the daily rate.
const (
	insuranceRateBasic    = 10
	insuranceRateStandard = 20
	insuranceRatePremium  = 35
)

const (
	serviceFeeRate = 0.10
	taxRate        = 0.12
)

// DailyRate returns the tier's per-day rate, or ErrInvalidInsuranceTier for an
// unrecognized key.
func (t InsuranceTier) DailyRate() (int64, error) {
	switch t {
	case InsuranceTierBasic:
		return insuranceRateBasic, nil
	case InsuranceTierStandard:
		return insuranceRateStandard, nil
	case InsuranceTierPremium:
		return insuranceRatePremium, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInsuranceTier, string(t))
}

// QuoteInput carries everything needed to price a candidate booking. The
// security deposit is a vehicle-level constant passed through untouched.
type QuoteInput struct {
	DailyRateCents       int64
	StartDate            time.Time
	EndDate              time.Time
	Tier                 InsuranceTier
	SecurityDepositCents int64
}

// Quote is the deterministic line-item breakdown. ServiceFeeCents and TaxCents
// are the authoritative per-field values; tax must never be back-derived from
// the total, which drifts by rounding error.
type Quote struct {
	Days                 int   `json:"days"`
	DailyRateCents       int64 `json:"daily_rate_cents"`
	SubtotalCents        int64 `json:"subtotal_cents"`
	InsuranceFeeCents    int64 `json:"insurance_fee_cents"`
	ServiceFeeCents      int64 `json:"service_fee_cents"`
	TaxCents             int64 `json:"tax_cents"`
	TotalCents           int64 `json:"total_cents"`
	SecurityDepositCents int64 `json:"security_deposit_cents"`
}

// ComputeQuote prices a candidate booking. The day count is the whole-day
// difference between the two dates; identical dates yield zero days and fail
// with ErrInvalidRange rather than defaulting to a one-day minimum.
func ComputeQuote(in QuoteInput) (Quote, error) {
	if in.DailyRateCents <= 0 {
		return Quote{}, fmt.Errorf("%w: %d", ErrInvalidRate, in.DailyRateCents)
	}
	tierRate, err := in.Tier.DailyRate()
	if err != nil {
		return Quote{}, err
	}

	start, end := Day(in.StartDate), Day(in.EndDate)
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return Quote{}, fmt.Errorf("%w: booking must span at least one day", ErrInvalidRange)
	}

	q := Quote{
		Days:                 days,
		DailyRateCents:       in.DailyRateCents,
		SubtotalCents:        in.DailyRateCents * int64(days),
		InsuranceFeeCents:    tierRate * int64(days),
		SecurityDepositCents: in.SecurityDepositCents,
	}
	// Rounding is half away from zero, applied once per field, never
	// compounded.
	q.ServiceFeeCents = roundHalfAway(float64(q.SubtotalCents) * serviceFeeRate)
	q.TaxCents = roundHalfAway(float64(q.SubtotalCents+q.InsuranceFeeCents+q.ServiceFeeCents) * taxRate)
	q.TotalCents = q.SubtotalCents + q.InsuranceFeeCents + q.ServiceFeeCents + q.TaxCents
	return q, nil
}

func roundHalfAway(x float64) int64 {
	return int64(math.Round(x))
}
