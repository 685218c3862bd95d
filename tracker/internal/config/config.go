package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the report package.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatPrometheus = "prometheus"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultFormat   = FormatText
	DefaultLogLevel = "info"
)

// Config is the top-level tracker configuration.
type Config struct {
	// Packages is the ordered list of sensor packages to process.
	Packages []Package `yaml:"packages"`

	// Output controls how summaries are rendered.
	Output OutputConfig `yaml:"output"`

	// Log controls the structured logger.
	Log LogConfig `yaml:"log"`
}

// Package is one raw sensor reading: a workout type code and its positional
// parameters.
type Package struct {
	// Name is an optional label used in logs and machine-readable output.
	Name string `yaml:"name"`

	// Type is the workout code: RUN | WLK | SWM.
	Type string `yaml:"type"`

	// Data holds the positional readings in the order the workout type expects.
	Data []float64 `yaml:"data"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	// Format is one of: text | json | prometheus.
	Format string `yaml:"format"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel converts Level to a slog.Level. Unknown values map to Info;
// validate rejects them before this is reached for loaded configs.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Default returns the built-in sample batch: one package per workout type.
func Default() *Config {
	cfg := defaults()
	cfg.Packages = []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
	return cfg
}

// Load reads and parses the YAML batch file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	cfg.Output.Format = NormalizeFormat(cfg.Output.Format)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// NormalizeFormat trims and lowercases a format name so that file values and
// command-line overrides compare equal.
func NormalizeFormat(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatPrometheus:
		return true
	}
	return false
}

func defaults() *Config {
	return &Config{
		Output: OutputConfig{Format: DefaultFormat},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// validate checks required fields and enums.
func validate(cfg *Config) error {
	if len(cfg.Packages) == 0 {
		return fmt.Errorf("packages: at least one package is required")
	}
	for i, p := range cfg.Packages {
		if strings.TrimSpace(p.Type) == "" {
			return fmt.Errorf("packages[%d]: type is required", i)
		}
		if len(p.Data) == 0 {
			return fmt.Errorf("packages[%d] %q: data is required", i, p.Type)
		}
	}
	if !ValidFormat(cfg.Output.Format) {
		return fmt.Errorf("output.format %q unknown: want text|json|prometheus", cfg.Output.Format)
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	return nil
}
