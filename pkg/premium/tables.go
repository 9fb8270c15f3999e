package premium

import (
	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Rate tables. Populated at init and read-only afterwards; the exported
// accessors hand out copies.
var (
	baseRatePerThousand    = decimal.RequireFromString("3.50")
	defaultStateMultiplier = decimal.RequireFromString("1.00")
	thousand               = decimal.NewFromInt(constants.PerThousand)

	states = []State{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		"DC",
	}

	stateIndex = indexStates(states)

	stateMultiplier = map[State]decimal.Decimal{
		"FL": decimal.RequireFromString("1.85"),
		"LA": decimal.RequireFromString("1.75"),
		"TX": decimal.RequireFromString("1.55"),
		"OK": decimal.RequireFromString("1.50"),
		"KS": decimal.RequireFromString("1.45"),
		"MS": decimal.RequireFromString("1.40"),
		"AL": decimal.RequireFromString("1.35"),
		"CA": decimal.RequireFromString("1.30"),
		"CO": decimal.RequireFromString("1.25"),
	}

	homeTypeMultiplier = map[HomeType]decimal.Decimal{
		SingleFamily: decimal.RequireFromString("1.00"),
		Condo:        decimal.RequireFromString("0.75"),
		Townhouse:    decimal.RequireFromString("0.85"),
		Mobile:       decimal.RequireFromString("1.45"),
	}

	coverageMultiplier = map[CoverageLevel]decimal.Decimal{
		Basic:    decimal.RequireFromString("0.75"),
		Standard: decimal.RequireFromString("1.00"),
		Premium:  decimal.RequireFromString("1.35"),
	}

	deductibleMultiplier = map[Deductible]decimal.Decimal{
		Deductible500:  decimal.RequireFromString("1.20"),
		Deductible1000: decimal.RequireFromString("1.00"),
		Deductible2500: decimal.RequireFromString("0.85"),
		Deductible5000: decimal.RequireFromString("0.70"),
	}

	coverageSummary = map[CoverageLevel][]string{
		Basic:    {"Dwelling protection only", "Fire & weather damage", "Basic liability", "Lowest premium"},
		Standard: {"Dwelling + contents", "Personal property coverage", "Standard liability", "Additional living expenses"},
		Premium:  {"Full replacement cost", "Extended coverage limits", "Umbrella liability", "Maximum protection"},
	}
)

// Coverage detail rows, in display order.
const (
	DwellingCoverage         = "Dwelling Coverage"
	OtherStructures          = "Other Structures"
	PersonalProperty         = "Personal Property"
	LiabilityProtection      = "Liability Protection"
	MedicalPayments          = "Medical Payments"
	AdditionalLivingExpenses = "Additional Living Expenses"
)

var coverageFeatureLabels = []string{
	DwellingCoverage,
	OtherStructures,
	PersonalProperty,
	LiabilityProtection,
	MedicalPayments,
	AdditionalLivingExpenses,
}

// basic only carries the dwelling and liability rows. standard and premium
// share the full table and differ only in price.
var coverageIncluded = map[CoverageLevel]map[string]bool{
	Basic: {
		DwellingCoverage:    true,
		LiabilityProtection: true,
	},
	Standard: allFeatures(),
	Premium:  allFeatures(),
}

func allFeatures() map[string]bool {
	included := make(map[string]bool, len(coverageFeatureLabels))
	for _, label := range coverageFeatureLabels {
		included[label] = true
	}
	return included
}

func indexStates(list []State) map[State]struct{} {
	index := make(map[State]struct{}, len(list))
	for _, s := range list {
		index[s] = struct{}{}
	}
	return index
}

// BaseRatePerThousand returns the dollars charged per $1,000 of home value
// before any multiplier is applied.
func BaseRatePerThousand() decimal.Decimal {
	return baseRatePerThousand
}

// DefaultStateMultiplier is applied to every state without its own entry.
func DefaultStateMultiplier() decimal.Decimal {
	return defaultStateMultiplier
}

// StateMultiplier returns the multiplier for a state code. Codes without an
// entry, including codes outside the supported list, get the default.
func StateMultiplier(state State) decimal.Decimal {
	if m, ok := stateMultiplier[state]; ok {
		return m
	}
	return defaultStateMultiplier
}

// StateMultipliers returns a copy of the states that carry their own
// multiplier.
func StateMultipliers() map[State]decimal.Decimal {
	out := make(map[State]decimal.Decimal, len(stateMultiplier))
	for k, v := range stateMultiplier {
		out[k] = v
	}
	return out
}

// HomeTypeMultiplier returns the multiplier for a home type.
func HomeTypeMultiplier(homeType HomeType) (decimal.Decimal, bool) {
	m, ok := homeTypeMultiplier[homeType]
	return m, ok
}

// CoverageMultiplier returns the multiplier for a coverage level.
func CoverageMultiplier(level CoverageLevel) (decimal.Decimal, bool) {
	m, ok := coverageMultiplier[level]
	return m, ok
}

// DeductibleMultiplier returns the multiplier for a deductible amount.
func DeductibleMultiplier(deductible Deductible) (decimal.Decimal, bool) {
	m, ok := deductibleMultiplier[deductible]
	return m, ok
}

// IsSupportedState reports whether the code is one of the 51 jurisdictions.
func IsSupportedState(state State) bool {
	_, ok := stateIndex[state]
	return ok
}
