// Package quote prices the quotes in a configuration.
package quote

import (
	"fmt"

	"github.com/iwvelando/premium-estimator/internal/config"
	"github.com/iwvelando/premium-estimator/pkg/premium"
	"go.uber.org/zap"
)

// Result holds the priced estimate for one named quote.
type Result struct {
	Name  string
	Quote premium.Quote
}

// GetQuotes prices every active quote in the configuration, in file order.
func GetQuotes(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, q := range conf.Quotes {
		if !q.Active {
			logger.Debug(fmt.Sprintf("skipping quote %s because it is inactive", q.Name),
				zap.String("op", "quote.GetQuotes"),
			)
			continue
		}

		result, err := Price(logger, q.Name, q)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Price converts one configured quote into a rating input and prices it.
func Price(logger *zap.Logger, name string, q config.Quote) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	input, err := q.RatingInput()
	if err != nil {
		return Result{}, fmt.Errorf("quote %q: %w", name, err)
	}

	return PriceInput(logger, name, input)
}

// PriceInput prices an already-typed rating input.
func PriceInput(logger *zap.Logger, name string, input premium.RatingInput) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	built, err := premium.BuildQuote(input)
	if err != nil {
		return Result{}, fmt.Errorf("quote %q: %w", name, err)
	}

	logger.Debug("priced quote",
		zap.String("op", "quote.PriceInput"),
		zap.String("quote", name),
		zap.Int64("homeValue", input.HomeValue),
		zap.String("state", string(input.State)),
		zap.String("homeType", string(input.HomeType)),
		zap.String("coverageLevel", string(input.CoverageLevel)),
		zap.Int("deductible", int(input.Deductible)),
		zap.Int64("annual", built.Result.Annual),
		zap.Int64("monthly", built.Result.Monthly),
	)

	return Result{Name: name, Quote: built}, nil
}
