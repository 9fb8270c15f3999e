package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateFromConfig(t *testing.T) {
	out, err := execute(t, "estimate", "--config", "../../test/test_config.yaml", "--output-format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, "header plus three active quotes")
	assert.Equal(t, "quote,home value,state,home type,coverage level,deductible,annual,monthly", lines[0])
	assert.Equal(t, "texas single family,350000,TX,single-family,standard,1000,1899,158", lines[1])
	assert.Equal(t, "florida mobile home,200000,FL,mobile,premium,500,3042,254", lines[2])
	assert.Equal(t, "california condo,500000,CA,condo,basic,2500,1088,91", lines[3])
}

func TestEstimateConfigPrettyByDefault(t *testing.T) {
	out, err := execute(t, "estimate", "--config", "../../test/test_config.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Estimate for quote texas single family ---")
	assert.Contains(t, out, "Annual cost    | $1,899")
	assert.NotContains(t, out, "new york townhouse draft")
}

func TestEstimateAdHoc(t *testing.T) {
	out, err := execute(t, "estimate",
		"--home-value", "1000000",
		"--state", "ny",
		"--home-type", "townhouse",
		"--coverage", "premium",
		"--deductible", "$5,000",
		"--output-format", "json",
	)
	require.NoError(t, err)

	var quotes []struct {
		Name   string `json:"name"`
		Result struct {
			Annual  int64 `json:"annual"`
			Monthly int64 `json:"monthly"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "ad hoc", quotes[0].Name)
	assert.Equal(t, int64(2811), quotes[0].Result.Annual)
	assert.Equal(t, int64(234), quotes[0].Result.Monthly)
}

func TestEstimateAdHocUsesDefaults(t *testing.T) {
	out, err := execute(t, "estimate", "--state", "TX", "--output-format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "ad hoc,350000,TX,single-family,standard,1000,1899,158")
}

func TestEstimateErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "Missing config",
			args:     []string{"estimate", "--config", "does-not-exist.yaml"},
			contains: "failed to load configuration",
		},
		{
			name:     "Bad output format",
			args:     []string{"estimate", "--state", "TX", "--output-format", "xml"},
			contains: "expected output format",
		},
		{
			name:     "Bad state",
			args:     []string{"estimate", "--state", "ZZ"},
			contains: `invalid state "ZZ"`,
		},
		{
			name:     "Bad deductible",
			args:     []string{"estimate", "--deductible", "750"},
			contains: `invalid deductible "750"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCoverageCommand(t *testing.T) {
	out, err := execute(t, "coverage", "basic")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Basic (Dwelling Only) ---")
	assert.Contains(t, out, "  • Dwelling protection only")
	assert.Contains(t, out, "Not Included")

	out, err = execute(t, "coverage")
	require.NoError(t, err)
	assert.Contains(t, out, "Standard (HO-3)")
	assert.Contains(t, out, "Premium (HO-5)")

	_, err = execute(t, "coverage", "gold")
	assert.Error(t, err)
}

func TestOptionsCommand(t *testing.T) {
	out, err := execute(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "AL AK AZ")
	assert.Contains(t, out, "Mobile Home")
	assert.Contains(t, out, "$2,500")
	assert.Contains(t, out, "Defaults:        $350,000, TX")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))
}
