package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/iwvelando/premium-estimator/pkg/premium"
)

var inputFields = []string{"homeValue", "state", "homeType", "coverageLevel", "deductible"}

func fieldsFromQuery(values url.Values) map[string]string {
	fields := make(map[string]string)
	for _, name := range inputFields {
		if _, ok := values[name]; ok {
			fields[name] = values.Get(name)
		}
	}
	return fields
}

// fieldsFromJSON flattens a decoded request body. Numbers and strings are
// both accepted for every field; null counts as absent.
func fieldsFromJSON(payload map[string]interface{}) map[string]string {
	fields := make(map[string]string)
	for _, name := range inputFields {
		raw, ok := payload[name]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			fields[name] = v
		case float64:
			fields[name] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			fields[name] = fmt.Sprint(v)
		}
	}
	return fields
}

// parseInput overlays the supplied fields on the form defaults.
func parseInput(fields map[string]string) (premium.RatingInput, error) {
	input := premium.DefaultInput()

	if raw, ok := fields["homeValue"]; ok {
		input.HomeValue = premium.ParseHomeValue(raw)
	}
	if raw, ok := fields["state"]; ok {
		state, err := premium.ParseState(raw)
		if err != nil {
			return premium.RatingInput{}, err
		}
		input.State = state
	}
	if raw, ok := fields["homeType"]; ok {
		homeType, err := premium.ParseHomeType(raw)
		if err != nil {
			return premium.RatingInput{}, err
		}
		input.HomeType = homeType
	}
	if raw, ok := fields["coverageLevel"]; ok {
		level, err := premium.ParseCoverageLevel(raw)
		if err != nil {
			return premium.RatingInput{}, err
		}
		input.CoverageLevel = level
	}
	if raw, ok := fields["deductible"]; ok {
		deductible, err := premium.ParseDeductible(raw)
		if err != nil {
			return premium.RatingInput{}, err
		}
		input.Deductible = deductible
	}

	return input, nil
}
