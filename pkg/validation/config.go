// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/iwvelando/premium-estimator/pkg/format"
	"github.com/iwvelando/premium-estimator/pkg/mathutil"
)

// ValidateHomeValue returns a warning when a home value falls outside the
// range the estimator form offers. Out-of-range values are still priced.
func ValidateHomeValue(quoteName string, homeValue int64) string {
	if homeValue < 0 {
		return fmt.Sprintf("Quote '%s' has a negative home value (%d) - it will be priced as $0",
			quoteName, homeValue)
	}

	if !mathutil.WithinRange(homeValue, constants.MinHomeValue, constants.MaxHomeValue) {
		return fmt.Sprintf("Quote '%s' home value %s is outside the expected range %s - %s",
			quoteName, format.Dollars(homeValue),
			format.Dollars(constants.MinHomeValue), format.Dollars(constants.MaxHomeValue))
	}

	return ""
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Quotes []QuoteConfig
}

// QuoteConfig carries the quote fields that warnings are derived from.
type QuoteConfig struct {
	Name      string
	Active    bool
	HomeValue int64
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if len(cv.Quotes) == 0 {
		return []string{"No quotes configured"}
	}

	seen := make(map[string]bool)
	active := 0
	for i, quote := range cv.Quotes {
		name := strings.TrimSpace(quote.Name)
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("Quote %s has no name", name))
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' is defined more than once", name))
		}
		seen[name] = true

		if !quote.Active {
			continue
		}
		active++

		if warning := ValidateHomeValue(name, quote.HomeValue); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active quotes - nothing will be priced")
	}

	return warnings
}
