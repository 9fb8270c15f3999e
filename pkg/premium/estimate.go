package premium

import (
	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/iwvelando/premium-estimator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Factors lists the rates applied to one input.
type Factors struct {
	BaseRatePerThousand decimal.Decimal `json:"baseRatePerThousand"`
	State               decimal.Decimal `json:"state"`
	HomeType            decimal.Decimal `json:"homeType"`
	Coverage            decimal.Decimal `json:"coverage"`
	Deductible          decimal.Decimal `json:"deductible"`
}

// Combined returns the base rate multiplied by every factor, i.e. the premium
// charged per $1,000 of home value before rounding.
func (f Factors) Combined() decimal.Decimal {
	return f.BaseRatePerThousand.
		Mul(f.State).
		Mul(f.HomeType).
		Mul(f.Coverage).
		Mul(f.Deductible)
}

// Quote bundles an estimate with the coverage tables displayed next to it.
type Quote struct {
	Input    RatingInput       `json:"input"`
	Result   PremiumResult     `json:"result"`
	Factors  Factors           `json:"factors"`
	Coverage []CoverageFeature `json:"coverage"`
	Summary  []string          `json:"summary"`
}

// FactorsFor validates the input and looks up every rate that applies to it.
func FactorsFor(input RatingInput) (Factors, error) {
	if err := Validate(input); err != nil {
		return Factors{}, err
	}

	return Factors{
		BaseRatePerThousand: baseRatePerThousand,
		State:               StateMultiplier(input.State),
		HomeType:            homeTypeMultiplier[input.HomeType],
		Coverage:            coverageMultiplier[input.CoverageLevel],
		Deductible:          deductibleMultiplier[input.Deductible],
	}, nil
}

// Estimate prices the input. The annual premium is rounded half away from
// zero to whole dollars and the monthly premium is the rounded annual premium
// divided by twelve, rounded the same way. A negative home value prices as 0.
func Estimate(input RatingInput) (PremiumResult, error) {
	factors, err := FactorsFor(input)
	if err != nil {
		return PremiumResult{}, err
	}
	return price(input.HomeValue, factors), nil
}

func price(homeValue int64, factors Factors) PremiumResult {
	if homeValue < 0 {
		homeValue = 0
	}

	raw := decimal.NewFromInt(homeValue).Div(thousand).Mul(factors.Combined())
	annual := mathutil.RoundWhole(raw)

	return PremiumResult{
		Annual:  annual,
		Monthly: mathutil.DivideRounded(annual, constants.MonthsPerYear),
	}
}

// CoverageDetails returns the six coverage rows for a level, in display order.
func CoverageDetails(level CoverageLevel) ([]CoverageFeature, error) {
	included, ok := coverageIncluded[level]
	if !ok {
		return nil, newValidationError("coverageLevel", level, validationReasons["coveragelevel"])
	}

	details := make([]CoverageFeature, 0, len(coverageFeatureLabels))
	for _, label := range coverageFeatureLabels {
		details = append(details, CoverageFeature{Label: label, Included: included[label]})
	}
	return details, nil
}

// CoverageSummary returns the four summary bullets for a level.
func CoverageSummary(level CoverageLevel) ([]string, error) {
	summary, ok := coverageSummary[level]
	if !ok {
		return nil, newValidationError("coverageLevel", level, validationReasons["coveragelevel"])
	}
	return append([]string(nil), summary...), nil
}

// BuildQuote prices the input and attaches the coverage tables for its level.
func BuildQuote(input RatingInput) (Quote, error) {
	factors, err := FactorsFor(input)
	if err != nil {
		return Quote{}, err
	}

	// Validation already guarantees the level is known.
	details, _ := CoverageDetails(input.CoverageLevel)
	summary, _ := CoverageSummary(input.CoverageLevel)

	return Quote{
		Input:    input,
		Result:   price(input.HomeValue, factors),
		Factors:  factors,
		Coverage: details,
		Summary:  summary,
	}, nil
}
