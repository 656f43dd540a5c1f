// Processing session: one original image, one processed result
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/algorithms"
	"image-transform-pipeline/internal/config"
	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/metrics"
)

// ProcessingStep records one completed run
type ProcessingStep struct {
	Algorithm  string
	Parameters map[string]interface{}
	Duration   time.Duration
}

// Result is the outcome of Run
type Result struct {
	Algorithm string
	Params    map[string]interface{}
	Output    *core.ImageBuffer
	Metrics   map[string]float64
	Duration  time.Duration
}

// Pipeline applies registered algorithms to the session's original image.
// Every run starts from the original, never from the previous output.
type Pipeline struct {
	mu          sync.RWMutex
	cfg         *config.Config
	imageData   *core.ImageData
	metricsEval *metrics.Evaluator
	logger      *logrus.Logger
	steps       []ProcessingStep

	onUpdate func(Result)
}

// New creates a session. A nil cfg uses config.Default().
func New(cfg *config.Config, logger *logrus.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Pipeline{
		cfg:         cfg,
		imageData:   core.NewImageData(),
		metricsEval: metrics.NewEvaluator(),
		logger:      logger,
	}
}

// SetUpdateCallback registers fn to be called after each successful run.
// fn runs on the caller's goroutine.
func (p *Pipeline) SetUpdateCallback(fn func(Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = fn
}

// SetOriginal replaces the session image and clears the history
func (p *Pipeline) SetOriginal(buf *core.ImageBuffer, path string) error {
	if err := core.ValidateImage(buf); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.imageData.SetOriginal(buf, path); err != nil {
		return err
	}
	p.steps = nil

	p.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"channels": buf.Channels(),
	}).Info("Original image set")
	return nil
}

// Run applies the named algorithm to the original image and stores the
// result as the processed image. Missing params are taken from the config.
func (p *Pipeline) Run(ctx context.Context, name string, params map[string]interface{}) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !algorithms.IsValidAlgorithm(name) {
		return nil, fmt.Errorf("algorithm not found: %s", name)
	}

	p.mu.RLock()
	original := p.imageData.GetOriginal()
	merged := p.defaultParamsLocked(name)
	p.mu.RUnlock()

	if original == nil {
		return nil, fmt.Errorf("no image loaded")
	}
	for k, v := range params {
		merged[k] = v
	}

	log := p.logger.WithFields(logrus.Fields{
		"algorithm": name,
		"params":    merged,
	})
	log.Debug("Processing started")

	start := time.Now()
	output, err := algorithms.Apply(name, original, merged)
	duration := time.Since(start)
	if err != nil {
		log.WithError(err).Error("Processing failed")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Debug("Processing result discarded after cancellation")
		return nil, err
	}

	result := &Result{
		Algorithm: name,
		Params:    merged,
		Output:    output,
		Metrics:   p.metricsEval.EvaluateStep(original, output, algorithms.IsBinarization(name)),
		Duration:  duration,
	}

	p.mu.Lock()
	// the original may have been replaced while the transform ran
	if p.imageData.GetOriginal() != original {
		p.mu.Unlock()
		return nil, fmt.Errorf("image changed during processing")
	}
	if err := p.imageData.SetProcessed(output); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.steps = append(p.steps, ProcessingStep{Algorithm: name, Parameters: merged, Duration: duration})
	onUpdate := p.onUpdate
	p.mu.Unlock()

	log.WithFields(logrus.Fields{
		"duration_ms": duration.Milliseconds(),
		"metrics":     metrics.Loggable(result.Metrics),
	}).Info("Processing completed")

	if onUpdate != nil {
		onUpdate(*result)
	}
	return result, nil
}

// Reset discards the processed image
func (p *Pipeline) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.imageData.ResetToOriginal(); err != nil {
		return err
	}
	p.steps = nil
	p.logger.Debug("Processed image reset to original")
	return nil
}

func (p *Pipeline) Original() *core.ImageBuffer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.imageData.GetOriginal()
}

func (p *Pipeline) Processed() *core.ImageBuffer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.imageData.GetProcessed()
}

func (p *Pipeline) HasImage() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.imageData.HasImage()
}

func (p *Pipeline) Metadata() core.ImageMetadata {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.imageData.GetMetadata()
}

// History returns the runs since the last SetOriginal or Reset
func (p *Pipeline) History() []ProcessingStep {
	p.mu.RLock()
	defer p.mu.RUnlock()
	steps := make([]ProcessingStep, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Report evaluates every metric between original and processed
func (p *Pipeline) Report() (metrics.Report, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.imageData.HasImage() {
		return metrics.Report{}, fmt.Errorf("no image loaded")
	}
	return p.metricsEval.GenerateReport(p.imageData.GetOriginal(), p.imageData.GetProcessed()), nil
}

// DefaultParams returns the configured parameters for name
func (p *Pipeline) DefaultParams(name string) map[string]interface{} {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.defaultParamsLocked(name)
}

func (p *Pipeline) defaultParamsLocked(name string) map[string]interface{} {
	params := make(map[string]interface{})
	if algorithm, ok := algorithms.Get(name); ok {
		for k, v := range algorithm.GetDefaultParams() {
			params[k] = v
		}
	}

	switch name {
	case algorithms.NameLowPass:
		params["kernel_size"] = float64(p.cfg.LowPass.KernelSize)
	case algorithms.NameGlobalThreshold:
		params["threshold"] = float64(p.cfg.Global.Threshold)
	case algorithms.NameAdaptiveThreshold:
		params["block_size"] = float64(p.cfg.Adaptive.BlockSize)
		params["C"] = p.cfg.Adaptive.C
		params["method"] = p.cfg.Adaptive.Method
	}
	return params
}
