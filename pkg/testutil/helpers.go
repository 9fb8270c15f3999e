// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/premium-estimator/internal/quote"
)

// FindQuote finds a quote result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindQuote(results []quote.Result, name string) *quote.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
