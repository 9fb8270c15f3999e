// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/premium-estimator/internal/quote"
	"github.com/iwvelando/premium-estimator/pkg/format"
	"github.com/iwvelando/premium-estimator/pkg/premium"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, results []quote.Result) error {
	for i, result := range results {
		q := result.Quote
		in := q.Input

		lines := []string{
			fmt.Sprintf("--- Estimate for quote %s ---\n", result.Name),
			fmt.Sprintf("Home value     | %s\n", format.Dollars(in.HomeValue)),
			fmt.Sprintf("State          | %s (x%s)\n", in.State, q.Factors.State.StringFixed(2)),
			fmt.Sprintf("Home type      | %s (x%s)\n", in.HomeType.Label(), q.Factors.HomeType.StringFixed(2)),
			fmt.Sprintf("Coverage level | %s (x%s)\n", in.CoverageLevel.Label(), q.Factors.Coverage.StringFixed(2)),
			fmt.Sprintf("Deductible     | %s (x%s)\n", in.Deductible.Label(), q.Factors.Deductible.StringFixed(2)),
			fmt.Sprintf("Annual cost    | %s\n", format.Dollars(q.Result.Annual)),
			fmt.Sprintf("Monthly cost   | %s\n", format.Dollars(q.Result.Monthly)),
			"\n",
		}
		for _, line := range lines {
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}

		if err := writeCoverage(w, q.Summary, q.Coverage); err != nil {
			return err
		}

		if len(results) > 1 && i < len(results)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// CoverageFormat writes the summary bullets and details table for one level.
func CoverageFormat(w io.Writer, level premium.CoverageLevel) error {
	details, err := premium.CoverageDetails(level)
	if err != nil {
		return err
	}
	summary, err := premium.CoverageSummary(level)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "--- %s ---\n", level.Label()); err != nil {
		return err
	}
	return writeCoverage(w, summary, details)
}

func writeCoverage(w io.Writer, summary []string, details []premium.CoverageFeature) error {
	if _, err := io.WriteString(w, "Coverage Level Summary\n"); err != nil {
		return err
	}
	for _, item := range summary {
		if _, err := fmt.Fprintf(w, "  • %s\n", item); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "Coverage Details\n"); err != nil {
		return err
	}
	for _, row := range details {
		if _, err := fmt.Fprintf(w, "  %-28s %s\n", row.Label, IncludedLabel(row.Included)); err != nil {
			return err
		}
	}
	return nil
}

// IncludedLabel renders a coverage row's inclusion flag.
func IncludedLabel(included bool) string {
	if included {
		return "Included"
	}
	return "Not Included"
}

// CsvFormat writes one row per quote in comma-separated value format.
func CsvFormat(w io.Writer, results []quote.Result) error {
	writer := csv.NewWriter(w)
	header := []string{"quote", "home value", "state", "home type", "coverage level", "deductible", "annual", "monthly"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		in := result.Quote.Input
		record := []string{
			result.Name,
			strconv.FormatInt(in.HomeValue, 10),
			string(in.State),
			string(in.HomeType),
			string(in.CoverageLevel),
			strconv.Itoa(int(in.Deductible)),
			strconv.FormatInt(result.Quote.Result.Annual, 10),
			strconv.FormatInt(result.Quote.Result.Monthly, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of the results as a string.
func CsvString(results []quote.Result) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, results); err != nil {
		return ""
	}
	return buf.String()
}

// JSONQuote is the JSON rendering of one priced quote.
type JSONQuote struct {
	premium.Quote
	Name             string `json:"name"`
	AnnualFormatted  string `json:"annualFormatted"`
	MonthlyFormatted string `json:"monthlyFormatted"`
	HomeValueLabel   string `json:"homeValueFormatted"`
}

// NewJSONQuote attaches display strings to a priced quote.
func NewJSONQuote(name string, q premium.Quote) JSONQuote {
	return JSONQuote{
		Name:             name,
		Quote:            q,
		AnnualFormatted:  format.Dollars(q.Result.Annual),
		MonthlyFormatted: format.Dollars(q.Result.Monthly),
		HomeValueLabel:   format.Dollars(q.Input.HomeValue),
	}
}

// JSONFormat writes the results as an indented JSON array.
func JSONFormat(w io.Writer, results []quote.Result) error {
	out := make([]JSONQuote, 0, len(results))
	for _, result := range results {
		out = append(out, NewJSONQuote(result.Name, result.Quote))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
