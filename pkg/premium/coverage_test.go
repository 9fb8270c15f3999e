package premium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageDetails(t *testing.T) {
	expectedOrder := []string{
		"Dwelling Coverage",
		"Other Structures",
		"Personal Property",
		"Liability Protection",
		"Medical Payments",
		"Additional Living Expenses",
	}

	tests := []struct {
		level    CoverageLevel
		included []string
	}{
		{Basic, []string{"Dwelling Coverage", "Liability Protection"}},
		{Standard, expectedOrder},
		{Premium, expectedOrder},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			details, err := CoverageDetails(tt.level)
			require.NoError(t, err)
			require.Len(t, details, 6)

			var labels, included []string
			for _, row := range details {
				labels = append(labels, row.Label)
				if row.Included {
					included = append(included, row.Label)
				}
			}
			assert.Equal(t, expectedOrder, labels)
			assert.Equal(t, tt.included, included)
		})
	}
}

func TestCoverageDetailsStandardAndPremiumMatch(t *testing.T) {
	standard, err := CoverageDetails(Standard)
	require.NoError(t, err)
	premium, err := CoverageDetails(Premium)
	require.NoError(t, err)
	assert.Equal(t, standard, premium)
}

func TestCoverageDetailsReturnsCopy(t *testing.T) {
	details, err := CoverageDetails(Basic)
	require.NoError(t, err)
	details[1].Included = true

	again, err := CoverageDetails(Basic)
	require.NoError(t, err)
	assert.False(t, again[1].Included, "mutating a returned table must not leak into later calls")
}

func TestCoverageSummary(t *testing.T) {
	tests := map[CoverageLevel][]string{
		Basic:    {"Dwelling protection only", "Fire & weather damage", "Basic liability", "Lowest premium"},
		Standard: {"Dwelling + contents", "Personal property coverage", "Standard liability", "Additional living expenses"},
		Premium:  {"Full replacement cost", "Extended coverage limits", "Umbrella liability", "Maximum protection"},
	}

	for level, expected := range tests {
		summary, err := CoverageSummary(level)
		require.NoError(t, err, level)
		assert.Equal(t, expected, summary, level)
	}

	summary, _ := CoverageSummary(Premium)
	summary[0] = "changed"
	again, _ := CoverageSummary(Premium)
	assert.Equal(t, "Full replacement cost", again[0])
}

func TestCoverageUnknownLevel(t *testing.T) {
	_, err := CoverageDetails("gold")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "coverageLevel", vErr.Field)
	assert.Equal(t, "gold", vErr.Value)

	_, err = CoverageSummary("gold")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOptionLists(t *testing.T) {
	states := States()
	assert.Len(t, states, 51)
	assert.Equal(t, State("AL"), states[0])
	assert.Equal(t, State("DC"), states[50])

	seen := make(map[State]bool)
	for _, s := range states {
		assert.False(t, seen[s], "duplicate state %s", s)
		seen[s] = true
		assert.True(t, IsSupportedState(s))
	}
	for s := range StateMultipliers() {
		assert.True(t, seen[s], "multiplier for unsupported state %s", s)
	}

	states[0] = "ZZ"
	assert.Equal(t, State("AL"), States()[0])

	for _, h := range HomeTypes() {
		_, ok := HomeTypeMultiplier(h)
		assert.True(t, ok, h)
	}
	for _, c := range CoverageLevels() {
		_, ok := CoverageMultiplier(c)
		assert.True(t, ok, c)
	}
	for _, d := range Deductibles() {
		_, ok := DeductibleMultiplier(d)
		assert.True(t, ok, d)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Single Family", SingleFamily.Label())
	assert.Equal(t, "Mobile Home", Mobile.Label())
	assert.Equal(t, "Basic (Dwelling Only)", Basic.Label())
	assert.Equal(t, "Standard (HO-3)", Standard.Label())
	assert.Equal(t, "Premium (HO-5)", Premium.Label())
	assert.Equal(t, "$500", Deductible500.Label())
	assert.Equal(t, "$2,500", Deductible2500.Label())
	assert.Equal(t, "castle", HomeType("castle").Label())
}
