// Package constants provides shared constants for the premium-estimator application.
package constants

// Pricing constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PerThousand is the home value unit the base rate is quoted against
	PerThousand = 1000
)

// Home value bounds used by the estimator form
const (
	// MinHomeValue is the smallest home value the form offers
	MinHomeValue int64 = 50000

	// MaxHomeValue is the largest home value the form offers
	MaxHomeValue int64 = 5000000

	// HomeValueStep is the form's increment for the home value input
	HomeValueStep int64 = 10000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. PREMIUM_LOGGING_LEVEL
	EnvPrefix = "PREMIUM"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful server shutdown
	DefaultShutdownTimeoutSeconds = 10
)
