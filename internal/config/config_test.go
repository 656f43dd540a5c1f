package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	return writeConfigAs(t, "config.toml", body)
}

func writeConfigAs(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.LowPass.KernelSize)
	assert.Equal(t, 127, cfg.Global.Threshold)
	assert.Equal(t, 11, cfg.Adaptive.BlockSize)
	assert.Equal(t, 2.0, cfg.Adaptive.C)
	assert.Equal(t, "gaussian", cfg.Adaptive.Method)
	assert.Equal(t, 800, cfg.Display.MaxWidth)
	assert.Equal(t, 600, cfg.Display.MaxHeight)
	assert.Equal(t, "lanczos", cfg.Display.Resample)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[global]
threshold = 90

[adaptive]
block_size = 15
c = 5.5
method = "mean"

[loader]
backend = "go"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Global.Threshold)
	assert.Equal(t, 15, cfg.Adaptive.BlockSize)
	assert.Equal(t, 5.5, cfg.Adaptive.C)
	assert.Equal(t, "mean", cfg.Adaptive.Method)
	assert.Equal(t, BackendGo, cfg.Loader.Backend)
	assert.Equal(t, 5, cfg.LowPass.KernelSize)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigAs(t, "config.yaml", `
low_pass:
  kernel_size: 3
display:
  max_width: 1024
  resample: catmullrom
log:
  level: debug
  format: text
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LowPass.KernelSize)
	assert.Equal(t, 1024, cfg.Display.MaxWidth)
	assert.Equal(t, 600, cfg.Display.MaxHeight)
	assert.Equal(t, "catmullrom", cfg.Display.Resample)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(writeConfigAs(t, "bad.yml", "global:\n  cutoff: 3\n"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"even kernel", "[low_pass]\nkernel_size = 4\n"},
		{"threshold range", "[global]\nthreshold = 300\n"},
		{"small block", "[adaptive]\nblock_size = 1\n"},
		{"method", "[adaptive]\nmethod = \"median\"\n"},
		{"backend", "[loader]\nbackend = \"vips\"\n"},
		{"resample", "[display]\nresample = \"box\"\n"},
		{"unknown key", "[global]\ncutoff = 10\n"},
		{"syntax", "[global\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	logger := cfg.NewLogger(false)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = cfg.NewLogger(true)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log = LogConfig{Level: "warn", Format: "text"}
	logger = cfg.NewLogger(false)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestFlagUsageNamesEveryFormat(t *testing.T) {
	files := map[string]string{
		"config.toml": "[log]\nlevel = \"warn\"\n",
		"config.yaml": "log:\n  level: warn\n",
		"config.yml":  "log:\n  level: warn\n",
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeConfigAs(t, name, body))
			require.NoError(t, err)
			assert.Equal(t, "warn", cfg.Log.Level)
			assert.Contains(t, strings.ToLower(FlagUsage), filepath.Ext(name)[1:])
		})
	}
	assert.Contains(t, FlagUsage, "TOML")
	assert.Contains(t, FlagUsage, "YAML")
}
