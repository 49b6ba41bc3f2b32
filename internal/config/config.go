package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"macropanel/internal/errors"
	"macropanel/internal/timeseries"
)

// Config represents the complete batch-run configuration. Values come from
// environment variables with the MACRO prefix; struct defaults mirror the
// published extract layout so a bare run consolidates the sample dataset.
type Config struct {
	Window  WindowConfig  `envconfig:"WINDOW"`
	GDP     GDPConfig     `envconfig:"GDP"`
	Logging LoggingConfig `envconfig:"LOGGING"`
	Paths   PathsConfig   `envconfig:"PATHS"`

	window timeseries.Window
	method timeseries.Method
}

// WindowConfig bounds the consolidation date range (inclusive).
type WindowConfig struct {
	Start string `envconfig:"START" default:"2020-01-01"`
	End   string `envconfig:"END" default:"2024-12-31"`
}

// GDPConfig selects how the annual GDP series is spread onto months.
type GDPConfig struct {
	InterpolationMethod string `envconfig:"INTERPOLATION_METHOD" default:"forward_fill"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// PathsConfig locates the raw extracts and the output directory. The glob
// entries cover sources whose file names carry publication timestamps.
type PathsConfig struct {
	DataDir   string `envconfig:"DATA_DIR" default:"data/sample/macro_data"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"data/sample"`

	CPIFile          string `envconfig:"CPI_FILE" default:"CPI_Monthly-1810000401-eng.csv"`
	LabourFile       string `envconfig:"LABOUR_FILE" default:"Labour_Force-1410028701-eng.csv"`
	GDPFile          string `envconfig:"GDP_FILE" default:"GDP-3610040201-eng.csv"`
	PolicyRateFile   string `envconfig:"POLICY_RATE_FILE" default:"Policy_Interest_Rate-V39079-sd-2020-01-01-ed-2024-12-31.csv"`
	PrimeRateFile    string `envconfig:"PRIME_RATE_FILE" default:"Prime_Rate-V80691311-sd-2020-01-01-ed-2024-12-31.csv"`
	MortgageRateFile string `envconfig:"MORTGAGE_RATE_FILE" default:"5Year_Conventional_Mortgage-V80691335-sd-2020-01-01-ed-2024-12-31.csv"`
	FXFile           string `envconfig:"FX_FILE" default:"FX_USD_CAD-sd-2020-01-01-ed-2024-12-31.csv"`
	HousingGlob      string `envconfig:"HOUSING_GLOB" default:"MLS_HPI_*.*"`
	OilGlob          string `envconfig:"OIL_GLOB" default:"WCS_Oil_Prices_Alberta_*.csv"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the date window and interpolation method, caching the
// parsed forms for the accessors below.
func (c *Config) Validate() error {
	start, err := time.Parse("2006-01-02", c.Window.Start)
	if err != nil {
		return errors.NewConfigurationError(
			fmt.Sprintf("malformed window start %q", c.Window.Start), err)
	}
	end, err := time.Parse("2006-01-02", c.Window.End)
	if err != nil {
		return errors.NewConfigurationError(
			fmt.Sprintf("malformed window end %q", c.Window.End), err)
	}
	if end.Before(start) {
		return errors.NewConfigurationError(
			fmt.Sprintf("window end %s precedes start %s", c.Window.End, c.Window.Start), nil)
	}
	c.window = timeseries.Window{Start: start.UTC(), End: end.UTC()}

	method, err := timeseries.ParseMethod(c.GDP.InterpolationMethod)
	if err != nil {
		return err
	}
	c.method = method

	return nil
}

// DateWindow returns the validated consolidation window.
func (c *Config) DateWindow() timeseries.Window { return c.window }

// Method returns the validated GDP interpolation method.
func (c *Config) Method() timeseries.Method { return c.method }

// Default returns the built-in configuration, validated.
func Default() *Config {
	var cfg Config
	// Process with no environment applies the struct defaults.
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		panic(fmt.Sprintf("default config unprocessable: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return &cfg
}
