package premium

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use once the custom rules are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so callers can map errors to form inputs.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"usstate": func(fl validator.FieldLevel) bool {
			return IsSupportedState(State(fl.Field().String()))
		},
		"hometype": func(fl validator.FieldLevel) bool {
			_, ok := homeTypeMultiplier[HomeType(fl.Field().String())]
			return ok
		},
		"coveragelevel": func(fl validator.FieldLevel) bool {
			_, ok := coverageMultiplier[CoverageLevel(fl.Field().String())]
			return ok
		},
		"deductible": func(fl validator.FieldLevel) bool {
			_, ok := deductibleMultiplier[Deductible(fl.Field().Int())]
			return ok
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("premium: registering validation " + tag + ": " + err.Error())
		}
	}

	return v
}

var validationReasons = map[string]string{
	"usstate":       "not a supported US state code",
	"hometype":      "expected one of single-family, condo, townhouse, mobile",
	"coveragelevel": "expected one of basic, standard, premium",
	"deductible":    "expected one of 500, 1000, 2500, 5000",
}

// Validate checks that every enumerated rating factor is a member of its set.
// Fields are checked in the order state, homeType, coverageLevel, deductible
// and the first failure is returned as a *ValidationError. The home value is
// never rejected.
func Validate(input RatingInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return newValidationError(fe.Field(), fe.Value(), validationReasons[fe.Tag()])
	}
	return err
}

// ParseHomeValue reads a home value the way the estimator form does: leading
// whitespace is skipped and the leading run of digits is used. Anything that
// does not start with a number, negative values, and values too large to
// represent all become 0.
func ParseHomeValue(raw string) int64 {
	s := strings.TrimSpace(raw)
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	value, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseState normalizes a state code and checks it against the supported list.
func ParseState(raw string) (State, error) {
	state := State(strings.ToUpper(strings.TrimSpace(raw)))
	if !IsSupportedState(state) {
		return "", newValidationError("state", raw, validationReasons["usstate"])
	}
	return state, nil
}

// ParseHomeType accepts "single-family", "single family" or "single_family"
// in any case.
func ParseHomeType(raw string) (HomeType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	homeType := HomeType(normalized)
	if _, ok := homeTypeMultiplier[homeType]; !ok {
		return "", newValidationError("homeType", raw, validationReasons["hometype"])
	}
	return homeType, nil
}

// ParseCoverageLevel normalizes a coverage level name.
func ParseCoverageLevel(raw string) (CoverageLevel, error) {
	level := CoverageLevel(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := coverageMultiplier[level]; !ok {
		return "", newValidationError("coverageLevel", raw, validationReasons["coveragelevel"])
	}
	return level, nil
}

// ParseDeductible accepts plain amounts ("1000") and dollar labels ("$1,000").
func ParseDeductible(raw string) (Deductible, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
	amount, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, newValidationError("deductible", raw, validationReasons["deductible"])
	}
	deductible := Deductible(amount)
	if _, ok := deductibleMultiplier[deductible]; !ok {
		return 0, newValidationError("deductible", raw, validationReasons["deductible"])
	}
	return deductible, nil
}
