// Package premium prices homeowners insurance estimates from a small set of
// rating factors and exposes the coverage tables shown next to an estimate.
//
// Everything in this package is a pure function of its arguments and the
// package-level rate tables, which are built once at init and never mutated.
package premium

import (
	"github.com/iwvelando/premium-estimator/pkg/format"
)

// State is a two-letter US jurisdiction code (the 50 states plus DC).
type State string

// HomeType is the construction category of the insured dwelling.
type HomeType string

// CoverageLevel is the policy tier.
type CoverageLevel string

// Deductible is the out-of-pocket amount in whole dollars.
type Deductible int

// Home types.
const (
	SingleFamily HomeType = "single-family"
	Condo        HomeType = "condo"
	Townhouse    HomeType = "townhouse"
	Mobile       HomeType = "mobile"
)

// Coverage levels.
const (
	Basic    CoverageLevel = "basic"
	Standard CoverageLevel = "standard"
	Premium  CoverageLevel = "premium"
)

// Deductible amounts.
const (
	Deductible500  Deductible = 500
	Deductible1000 Deductible = 1000
	Deductible2500 Deductible = 2500
	Deductible5000 Deductible = 5000
)

// RatingInput holds the rating factors for one estimate request.
type RatingInput struct {
	HomeValue     int64         `json:"homeValue" yaml:"homeValue"`
	State         State         `json:"state" yaml:"state" validate:"usstate"`
	HomeType      HomeType      `json:"homeType" yaml:"homeType" validate:"hometype"`
	CoverageLevel CoverageLevel `json:"coverageLevel" yaml:"coverageLevel" validate:"coveragelevel"`
	Deductible    Deductible    `json:"deductible" yaml:"deductible" validate:"deductible"`
}

// PremiumResult is the priced outcome of an estimate, in whole dollars.
type PremiumResult struct {
	Annual  int64 `json:"annual"`
	Monthly int64 `json:"monthly"`
}

// CoverageFeature is one row of the coverage details table.
type CoverageFeature struct {
	Label    string `json:"label"`
	Included bool   `json:"included"`
}

// DefaultInput returns the input the estimator form starts with.
func DefaultInput() RatingInput {
	return RatingInput{
		HomeValue:     350000,
		State:         "TX",
		HomeType:      SingleFamily,
		CoverageLevel: Standard,
		Deductible:    Deductible1000,
	}
}

// Label returns the display name of the home type.
func (h HomeType) Label() string {
	switch h {
	case SingleFamily:
		return "Single Family"
	case Condo:
		return "Condo"
	case Townhouse:
		return "Townhouse"
	case Mobile:
		return "Mobile Home"
	}
	return string(h)
}

// Label returns the display name of the coverage level.
func (c CoverageLevel) Label() string {
	switch c {
	case Basic:
		return "Basic (Dwelling Only)"
	case Standard:
		return "Standard (HO-3)"
	case Premium:
		return "Premium (HO-5)"
	}
	return string(c)
}

// Label returns the deductible as a dollar amount, e.g. "$1,000".
func (d Deductible) Label() string {
	return format.Dollars(int64(d))
}

// States returns every supported jurisdiction code in display order.
func States() []State {
	return append([]State(nil), states...)
}

// HomeTypes returns the home types in display order.
func HomeTypes() []HomeType {
	return []HomeType{SingleFamily, Condo, Townhouse, Mobile}
}

// CoverageLevels returns the coverage levels from cheapest to richest.
func CoverageLevels() []CoverageLevel {
	return []CoverageLevel{Basic, Standard, Premium}
}

// Deductibles returns the deductible amounts in ascending order.
func Deductibles() []Deductible {
	return []Deductible{Deductible500, Deductible1000, Deductible2500, Deductible5000}
}

// Disclaimer is shown alongside every estimate.
const Disclaimer = "This tool provides an informational estimate of homeowners insurance costs " +
	"based on common rating factors such as home value, location, home type, coverage level, " +
	"and deductible. The figures shown are estimates only. Actual insurance premiums vary based " +
	"on home age, construction materials, claims history, and insurer criteria. Contact licensed " +
	"providers for accurate quotes."
