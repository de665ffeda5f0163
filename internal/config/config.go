package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Chart    ChartConfig    `yaml:"chart" envconfig:"CHART"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes how raw records are split into time and data fields
type InputConfig struct {
	// Delimiter separates fields within a record
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" default:"," validate:"len=1"`
	// TimeColumn is the 1-based index of the opaque time/date field
	TimeColumn int `yaml:"time_column" envconfig:"TIME_COLUMN" default:"1" validate:"min=1"`
	// DataColumn is the 1-based index of the numeric field; 0 selects the
	// last field of the first parsed line
	DataColumn int `yaml:"data_column" envconfig:"DATA_COLUMN" default:"0" validate:"min=0"`
}

// AnalysisConfig contains tunables for the analysis reports
type AnalysisConfig struct {
	// AnomalyThresholdSigma is the number of standard deviations beyond
	// which a sample is flagged as anomalous
	AnomalyThresholdSigma float64 `yaml:"anomaly_threshold_sigma" envconfig:"ANOMALY_THRESHOLD_SIGMA" default:"3.0" validate:"gt=0"`
	// ForecastPeriods is the number of periods to extrapolate beyond the window
	ForecastPeriods int `yaml:"forecast_periods" envconfig:"FORECAST_PERIODS" default:"5" validate:"min=1"`
	// MovingAverageWindow is the trailing window length for smoothing
	MovingAverageWindow int `yaml:"moving_average_window" envconfig:"MOVING_AVERAGE_WINDOW" default:"7" validate:"min=1"`
	// SeasonalityPeriods are the candidate periods scored by the detector
	SeasonalityPeriods []int `yaml:"seasonality_periods" envconfig:"SEASONALITY_PERIODS" default:"7,12,24,30" validate:"min=1,dive,min=2"`
}

// ChartConfig contains text chart dimensions
type ChartConfig struct {
	Width  int `yaml:"width" envconfig:"WIDTH" default:"60" validate:"min=10"`
	Height int `yaml:"height" envconfig:"HEIGHT" default:"20" validate:"min=4"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/trendcli.log"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables use the TREND prefix; the file
// path comes from TREND_CONFIG_FILE and defaults to trendcli.yaml in the
// working directory. File values override environment defaults.
func Load() (*Config, error) {
	var cfg Config

	// Load defaults and environment variables first
	if err := envconfig.Process("TREND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Overlay config file if it exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration with all defaults applied and no
// environment or file input. Used as the fallback when Load fails.
func Default() *Config {
	var cfg Config
	// envconfig applies struct tag defaults even with no variables set;
	// an error here would mean a broken tag, which the tests would catch.
	_ = envconfig.Process("TRENDCLI_DEFAULTS_ONLY", &cfg)
	return &cfg
}

// Validate checks the configuration against its struct constraints.
// Non-positive forecast horizons and windows are rejected here, at the
// configuration boundary, before any report runs.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath resolves the config file location
func getConfigFilePath() string {
	if path := os.Getenv("TREND_CONFIG_FILE"); path != "" {
		return path
	}
	return "trendcli.yaml"
}
