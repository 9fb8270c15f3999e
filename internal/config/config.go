// Package config defines the data structures related to configuration and
// includes functions for loading and checking the quote file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/iwvelando/premium-estimator/pkg/premium"
	"github.com/iwvelando/premium-estimator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for premium-estimator.
type Configuration struct {
	Quotes  []Quote       `yaml:"quotes"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Quote is one named set of rating factors to price.
type Quote struct {
	Name          string `yaml:"name"`
	Active        bool   `yaml:"active"`
	HomeValue     int64  `yaml:"homeValue"`
	State         string `yaml:"state"`
	HomeType      string `yaml:"homeType"`
	CoverageLevel string `yaml:"coverageLevel"`
	Deductible    string `yaml:"deductible"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// RatingInput converts the quote into the estimator's input, normalizing the
// enumerated fields. The first field that cannot be parsed is reported as a
// *premium.ValidationError.
func (q Quote) RatingInput() (premium.RatingInput, error) {
	state, err := premium.ParseState(q.State)
	if err != nil {
		return premium.RatingInput{}, err
	}
	homeType, err := premium.ParseHomeType(q.HomeType)
	if err != nil {
		return premium.RatingInput{}, err
	}
	level, err := premium.ParseCoverageLevel(q.CoverageLevel)
	if err != nil {
		return premium.RatingInput{}, err
	}
	deductible, err := premium.ParseDeductible(q.Deductible)
	if err != nil {
		return premium.RatingInput{}, err
	}

	return premium.RatingInput{
		HomeValue:     q.HomeValue,
		State:         state,
		HomeType:      homeType,
		CoverageLevel: level,
		Deductible:    deductible,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	quotes := make([]validation.QuoteConfig, 0, len(c.Quotes))
	for _, quote := range c.Quotes {
		quotes = append(quotes, validation.QuoteConfig{
			Name:      quote.Name,
			Active:    quote.Active,
			HomeValue: quote.HomeValue,
		})
	}

	validator := validation.ConfigValidator{Quotes: quotes}
	return validator.ValidateAll()
}

// ActiveQuotes returns the quotes marked active, in file order.
func (c *Configuration) ActiveQuotes() []Quote {
	var active []Quote
	for _, quote := range c.Quotes {
		if quote.Active {
			active = append(active, quote)
		}
	}
	return active
}
