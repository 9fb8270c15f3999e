package testutil

import (
	"testing"

	"github.com/iwvelando/premium-estimator/internal/quote"
	"github.com/iwvelando/premium-estimator/pkg/premium"
)

func TestFindQuote(t *testing.T) {
	results := []quote.Result{
		{Name: "Quote A", Quote: premium.Quote{Result: premium.PremiumResult{Annual: 1000}}},
		{Name: "Quote B", Quote: premium.Quote{Result: premium.PremiumResult{Annual: 2000}}},
		{Name: "Another Quote", Quote: premium.Quote{Result: premium.PremiumResult{Annual: 3000}}},
	}

	tests := []struct {
		name           string
		searchName     string
		expectFound    bool
		expectedAnnual int64
	}{
		{
			name:           "Find existing quote A",
			searchName:     "Quote A",
			expectFound:    true,
			expectedAnnual: 1000,
		},
		{
			name:           "Find quote with longer name",
			searchName:     "Another Quote",
			expectFound:    true,
			expectedAnnual: 3000,
		},
		{
			name:        "Search for non-existent quote",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
		{
			name:        "Case sensitive search",
			searchName:  "quote a",
			expectFound: false,
		},
		{
			name:        "Partial name match",
			searchName:  "Quote",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindQuote(results, tt.searchName)

			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindQuote(%q) = %+v, expected nil", tt.searchName, result)
				}
				return
			}

			if result == nil {
				t.Fatalf("FindQuote(%q) = nil, expected a result", tt.searchName)
			}
			if result.Quote.Result.Annual != tt.expectedAnnual {
				t.Errorf("FindQuote(%q) annual = %d, expected %d", tt.searchName, result.Quote.Result.Annual, tt.expectedAnnual)
			}
		})
	}
}

func TestFindQuoteReturnsPointerIntoSlice(t *testing.T) {
	results := []quote.Result{{Name: "only"}}
	found := FindQuote(results, "only")
	if found != &results[0] {
		t.Error("expected FindQuote to return a pointer into the results slice")
	}
	if FindQuote(nil, "only") != nil {
		t.Error("expected nil for nil results")
	}
}
