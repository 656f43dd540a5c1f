// Application configuration loaded from an optional TOML or YAML file
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LowPassConfig holds the smoothing kernel settings
type LowPassConfig struct {
	KernelSize int `toml:"kernel_size" yaml:"kernel_size"`
}

// GlobalConfig holds the fixed threshold
type GlobalConfig struct {
	Threshold int `toml:"threshold" yaml:"threshold"`
}

// AdaptiveConfig holds the local threshold settings
type AdaptiveConfig struct {
	BlockSize int     `toml:"block_size" yaml:"block_size"`
	C         float64 `toml:"c" yaml:"c"`
	Method    string  `toml:"method" yaml:"method"`
}

// DisplayConfig is the viewport processed images are fitted into
type DisplayConfig struct {
	MaxWidth  int    `toml:"max_width" yaml:"max_width"`
	MaxHeight int    `toml:"max_height" yaml:"max_height"`
	Resample  string `toml:"resample" yaml:"resample"`
}

// LoaderConfig selects the codec backend
type LoaderConfig struct {
	Backend string `toml:"backend" yaml:"backend"`
}

// LogConfig controls logger level and output format
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Config is the complete application configuration
type Config struct {
	LowPass  LowPassConfig  `toml:"low_pass" yaml:"low_pass"`
	Global   GlobalConfig   `toml:"global" yaml:"global"`
	Adaptive AdaptiveConfig `toml:"adaptive" yaml:"adaptive"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`
	Loader   LoaderConfig   `toml:"loader" yaml:"loader"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// FlagUsage is the help text for the -config flag of both binaries
const FlagUsage = "Path to a TOML or YAML (.yaml, .yml) configuration file"

// Loader backends
const (
	BackendOpenCV = "opencv"
	BackendGo     = "go"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LowPass:  LowPassConfig{KernelSize: 5},
		Global:   GlobalConfig{Threshold: 127},
		Adaptive: AdaptiveConfig{BlockSize: 11, C: 2, Method: "gaussian"},
		Display:  DisplayConfig{MaxWidth: 800, MaxHeight: 600, Resample: "lanczos"},
		Loader:   LoaderConfig{Backend: BackendOpenCV},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Files ending in .yaml or .yml are YAML, everything else is TOML.
// Keys missing from the file keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value against the ranges the transforms accept
func (c *Config) Validate() error {
	if c.LowPass.KernelSize < 1 || c.LowPass.KernelSize%2 == 0 {
		return fmt.Errorf("low_pass.kernel_size must be a positive odd number, got %d", c.LowPass.KernelSize)
	}
	if c.Global.Threshold < 0 || c.Global.Threshold > 255 {
		return fmt.Errorf("global.threshold must be in [0, 255], got %d", c.Global.Threshold)
	}
	if c.Adaptive.BlockSize < 3 || c.Adaptive.BlockSize%2 == 0 {
		return fmt.Errorf("adaptive.block_size must be odd and at least 3, got %d", c.Adaptive.BlockSize)
	}
	switch c.Adaptive.Method {
	case "gaussian", "mean":
	default:
		return fmt.Errorf("adaptive.method must be gaussian or mean, got %q", c.Adaptive.Method)
	}
	if c.Display.MaxWidth <= 0 || c.Display.MaxHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.MaxWidth, c.Display.MaxHeight)
	}
	switch c.Display.Resample {
	case "lanczos", "catmullrom":
	default:
		return fmt.Errorf("display.resample must be lanczos or catmullrom, got %q", c.Display.Resample)
	}
	switch c.Loader.Backend {
	case BackendOpenCV, BackendGo:
	default:
		return fmt.Errorf("loader.backend must be %s or %s, got %q", BackendOpenCV, BackendGo, c.Loader.Backend)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds a logger from the log section. debug forces debug level
// with colored text output.
func (c *Config) NewLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	if debug || c.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   debug,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
