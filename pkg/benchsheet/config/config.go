// Package config loads benchsheet settings from a TOML file and BENCHSHEET_*
// environment variables. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read when no path is given and the file exists.
const DefaultFile = "benchsheet.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BENCHSHEET_"

// ErrInvalidConfig indicates a malformed config file or environment value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete file-level configuration.
type Config struct {
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ReportConfig holds report generation defaults.
type ReportConfig struct {
	Region       string `toml:"region"`
	TopN         int    `toml:"top_n"`
	PeriodMonths int    `toml:"period_months"`
	Weights      string `toml:"weights"`
	Lang         string `toml:"lang"`
	LangSource   string `toml:"lang_source"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OutputConfig holds package metadata settings.
type OutputConfig struct {
	Application string `toml:"application"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Region:       "global",
			TopN:         8,
			PeriodMonths: 24,
			Weights:      "20,30,15,20,10,5",
			Lang:         "auto",
			LangSource:   "both",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Application: "benchsheet",
		},
	}
}

// Load reads .env from the working directory if present, then the TOML file
// at path (or DefaultFile when path is empty and that file exists), then
// applies environment overrides.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup and no .env handling.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file, use defaults
	default:
		return nil, err
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strings.TrimSpace(strict.String()))
		}
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"REGION":      &cfg.Report.Region,
		"WEIGHTS":     &cfg.Report.Weights,
		"LANG":        &cfg.Report.Lang,
		"LANG_SOURCE": &cfg.Report.LangSource,
		"LOG_LEVEL":   &cfg.Log.Level,
		"LOG_FORMAT":  &cfg.Log.Format,
		"APPLICATION": &cfg.Output.Application,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"TOP_N":         &cfg.Report.TopN,
		"PERIOD_MONTHS": &cfg.Report.PeriodMonths,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, key, v)
		}
		*dst = n
	}
	return nil
}
