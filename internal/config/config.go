// Package config loads cableviz settings from $CABLEVIZ_HOME/config.yaml, a
// project-local .cableviz.yaml and CABLEVIZ_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/econum/cableviz/internal/chart"
	"github.com/econum/cableviz/internal/energy"
	"github.com/econum/cableviz/internal/gauge"
	"github.com/econum/cableviz/internal/impact"
	"github.com/econum/cableviz/internal/logging"
	"github.com/econum/cableviz/internal/units"
)

// EnvPrefix prefixes every environment override, e.g. CABLEVIZ_GAUGE_MAX.
const EnvPrefix = "CABLEVIZ"

const (
	configFileName  = "config.yaml"
	historyFileName = "history.db"
	configFilePerm  = 0o600
	configDirPerm   = 0o700
)

// Config is the full cableviz configuration.
type Config struct {
	Display    DisplayConfig    `yaml:"display"    mapstructure:"display"`
	Gauge      GaugeConfig      `yaml:"gauge"      mapstructure:"gauge"`
	Thresholds ThresholdsConfig `yaml:"thresholds" mapstructure:"thresholds"`
	Chart      ChartConfig      `yaml:"chart"      mapstructure:"chart"`
	Logging    LoggingConfig    `yaml:"logging"    mapstructure:"logging"`
	History    HistoryConfig    `yaml:"history"    mapstructure:"history"`
	Metrics    MetricsConfig    `yaml:"metrics"    mapstructure:"metrics"`

	configPath string
}

// DisplayConfig controls the static report.
type DisplayConfig struct {
	Width    int    `yaml:"width"    mapstructure:"width"`
	Decimals int    `yaml:"decimals" mapstructure:"decimals"`
	View     string `yaml:"view"     mapstructure:"view"`
	Color    bool   `yaml:"color"    mapstructure:"color"`
}

// GaugeConfig describes the temperature gauge.
type GaugeConfig struct {
	Max       float64 `yaml:"max"        mapstructure:"max"`
	MajorTick float64 `yaml:"major_tick" mapstructure:"major_tick"`
	Clamp     bool    `yaml:"clamp"      mapstructure:"clamp"`
	Cols      int     `yaml:"cols"       mapstructure:"cols"`
	Rows      int     `yaml:"rows"       mapstructure:"rows"`
}

// ThresholdsConfig holds the temperature status thresholds in °C.
type ThresholdsConfig struct {
	WarningCelsius float64 `yaml:"warning_celsius" mapstructure:"warning_celsius"`
	DangerCelsius  float64 `yaml:"danger_celsius"  mapstructure:"danger_celsius"`
}

// ChartConfig controls the temperature chart.
type ChartConfig struct {
	Policy string `yaml:"policy" mapstructure:"policy"`
	Height int    `yaml:"height" mapstructure:"height"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file"   mapstructure:"file"`
}

// HistoryConfig controls the render history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path"    mapstructure:"path"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" mapstructure:"textfile"`
}

// Default values.
const (
	DefaultWidth       = 80
	DefaultGaugeCols   = 60
	DefaultGaugeRows   = 15
	DefaultChartHeight = 8
)

// New returns the default configuration, pointed at the default file path.
func New() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			Width:    DefaultWidth,
			Decimals: energy.DefaultDecimals,
			View:     "summary",
			Color:    true,
		},
		Gauge: GaugeConfig{
			Max:       gauge.DefaultDomainMax,
			MajorTick: gauge.DefaultMajorEvery,
			Cols:      DefaultGaugeCols,
			Rows:      DefaultGaugeRows,
		},
		Thresholds: ThresholdsConfig{
			WarningCelsius: impact.DefaultWarningCelsius,
			DangerCelsius:  impact.DefaultDangerCelsius,
		},
		Chart: ChartConfig{
			Policy: chart.PolicyMinutesLabel.String(),
			Height: DefaultChartHeight,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatAuto,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// Path replaces the global config file. Empty means
	// $CABLEVIZ_HOME/config.yaml.
	Path string

	// ProjectFile is merged over the global file when set.
	ProjectFile string
}

// Load reads defaults, then the global file, then the project file, then
// environment variables, and validates the result. Missing files are not
// an error unless Path names one explicitly.
func Load(opts LoadOptions) (*Config, error) {
	cfg := New()
	if opts.Path != "" {
		cfg.configPath = opts.Path
	}

	defaults, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("reading defaults: %w", err)
	}

	if cfg.configPath != "" {
		if err := mergeFile(v, cfg.configPath, opts.Path != ""); err != nil {
			return nil, err
		}
	}
	if opts.ProjectFile != "" {
		if err := mergeFile(v, opts.ProjectFile, false); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeFile(v *viper.Viper, path string, required bool) error {
	v.SetConfigFile(path)
	err := v.MergeInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !required && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("reading config file %s: %w", path, err)
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no configuration path: %w", ErrInvalidConfig)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// YAML returns the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding configuration: %w", err)
	}
	return string(data), nil
}

// HistoryPath returns the history database path, defaulting to
// $CABLEVIZ_HOME/history.db.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, historyFileName), nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !(c.Gauge.Max > 0) {
		return invalid("gauge.max must be positive, got %v", c.Gauge.Max)
	}
	if !(c.Gauge.MajorTick > 0) || c.Gauge.MajorTick > c.Gauge.Max {
		return invalid("gauge.major_tick must be in (0, %v], got %v", c.Gauge.Max, c.Gauge.MajorTick)
	}
	if c.Gauge.Cols <= 0 || c.Gauge.Rows <= 0 {
		return invalid("gauge.cols and gauge.rows must be positive")
	}
	if c.Thresholds.WarningCelsius >= c.Thresholds.DangerCelsius {
		return invalid("thresholds.warning_celsius (%v) must be below danger_celsius (%v)",
			c.Thresholds.WarningCelsius, c.Thresholds.DangerCelsius)
	}
	if c.Display.Decimals < 1 || c.Display.Decimals > units.MaxDecimals {
		return invalid("display.decimals must be in [1, %d], got %d", units.MaxDecimals, c.Display.Decimals)
	}
	if c.Display.Width < 0 {
		return invalid("display.width must not be negative")
	}
	if c.Chart.Height <= 0 {
		return invalid("chart.height must be positive")
	}
	if _, err := chart.ParsePolicy(c.Chart.Policy); err != nil {
		return fmt.Errorf("chart.policy: %w", errors.Join(ErrInvalidConfig, err))
	}
	if _, err := energy.ParseView(c.Display.View); err != nil {
		return fmt.Errorf("display.view: %w", errors.Join(ErrInvalidConfig, err))
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			return invalid("logging.level %q is not a log level", c.Logging.Level)
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatAuto, logging.FormatConsole, logging.FormatJSON:
	default:
		return invalid("logging.format %q is not auto, console or json", c.Logging.Format)
	}
	return nil
}

// GaugeSpec builds the gauge spec of the configuration.
func (c *Config) GaugeSpec() (gauge.Spec, error) {
	spec, err := gauge.NewSpec(c.Gauge.Max, c.Gauge.MajorTick)
	if err != nil {
		return gauge.Spec{}, err
	}
	spec.Clamp = c.Gauge.Clamp
	return spec, nil
}

// TemperatureClassifier builds the classifier of the configured thresholds.
func (c *Config) TemperatureClassifier() (*impact.TemperatureClassifier, error) {
	return impact.NewTemperatureClassifier(c.Thresholds.WarningCelsius, c.Thresholds.DangerCelsius)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
