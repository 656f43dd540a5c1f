package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-transform-pipeline/internal/algorithms"
	"image-transform-pipeline/internal/config"
	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/io"
)

func TestRunGlobalThreshold(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := config.Default()
	cfg.Loader.Backend = config.BackendGo

	loader, err := io.NewImageLoader(cfg.Loader.Backend, logger)
	require.NoError(t, err)

	src, err := core.NewImageBuffer(4, 1, 1, []uint8{10, 100, 128, 250})
	require.NoError(t, err)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	require.NoError(t, loader.SaveImage(src, in))

	params := map[string]interface{}{"threshold": 100.0}
	require.NoError(t, run(context.Background(), cfg, logger, algorithms.NameGlobalThreshold, params, in, out, true))

	got, err := loader.LoadImageGrayscale(out)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 255, 255}, got.Samples())
	assert.Equal(t, "Done", hook.LastEntry().Message)
}

func TestRunErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := config.Default()
	cfg.Loader.Backend = config.BackendGo
	dir := t.TempDir()

	err := run(context.Background(), cfg, logger, algorithms.NameLowPass, nil,
		filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), false)
	assert.Error(t, err)

	cfg.Loader.Backend = "vips"
	err = run(context.Background(), cfg, logger, algorithms.NameLowPass, nil, "a.png", "b.png", false)
	assert.Error(t, err)
}
