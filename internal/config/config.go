// Package config resolves sigcmp settings from flags, environment and an
// optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/roach88/sigcmp/internal/align"
)

// EnvPrefix prefixes environment overrides, e.g. SIGCMP_TIME_DEVIATION.
const EnvPrefix = "SIGCMP"

// Config keys. Flags are bound to these names.
const (
	KeyIgnoreTime    = "ignore_time"
	KeyTimeDeviation = "time_deviation"
	KeyFormat        = "format"
	KeyLogLevel      = "log_level"
	KeyFailOnDiff    = "fail_on_diff"
	KeySummary       = "summary"
)

// Keys returns every config key.
func Keys() []string {
	return []string{KeyIgnoreTime, KeyTimeDeviation, KeyFormat, KeyLogLevel, KeyFailOnDiff, KeySummary}
}

// Config is the resolved configuration for one run.
type Config struct {
	// IgnoreTime compares direction and payload only.
	IgnoreTime bool `mapstructure:"ignore_time"`

	// TimeDeviation is the timestamp tolerance. It applies only when set
	// explicitly (UseDeviation) and IgnoreTime is false.
	TimeDeviation float64 `mapstructure:"time_deviation"`
	UseDeviation  bool    `mapstructure:"-"`

	// Format is "text" or "json".
	Format string `mapstructure:"format"`

	// LogLevel is one of logging.ValidLevels.
	LogLevel string `mapstructure:"log_level"`

	// FailOnDiff makes a run with reports exit non-zero.
	FailOnDiff bool `mapstructure:"fail_on_diff"`

	// Summary prints a count line after the reports in text mode.
	Summary bool `mapstructure:"summary"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "warn",
	}
}

// SetDefaults registers the built-in values on v. time_deviation has no
// default so that v.IsSet reports whether a tolerance was given.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyIgnoreTime, d.IgnoreTime)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyFailOnDiff, d.FailOnDiff)
	v.SetDefault(KeySummary, d.Summary)
}

// Init prepares v: defaults, environment overrides and the config file.
// If cfgFile is empty the default location is searched and a missing file
// is not an error. An explicit cfgFile must exist.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Explicit bindings make env-only keys visible to Unmarshal.
	for _, key := range Keys() {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load resolves v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.UseDeviation = v.IsSet(KeyTimeDeviation)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Policy returns the comparison policy the config selects.
func (c *Config) Policy() align.Policy {
	switch {
	case c.IgnoreTime:
		return align.IgnoreTimePolicy()
	case c.UseDeviation:
		return align.DeviationPolicy(c.TimeDeviation)
	default:
		return align.ExactPolicy()
	}
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sigcmp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sigcmp"
	}
	return filepath.Join(home, ".config", "sigcmp")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidFormats returns the accepted output formats.
func ValidFormats() []string {
	return []string{"text", "json"}
}

// IsValidFormat checks if the format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

