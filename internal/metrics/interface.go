// Metrics for comparing a buffer before and after a transform
package metrics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"image-transform-pipeline/internal/core"
)

// Metric defines the interface for quality metrics
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed *core.ImageBuffer) (float64, error)

	GetName() string
	GetDescription() string

	// GetRange returns the value range (min, max)
	GetRange() (float64, float64)

	IsHigherBetter() bool
}

// Metric names registered by NewEvaluator
const (
	NameMSE             = "mse"
	NamePSNR            = "psnr"
	NameContrastRatio   = "contrast_ratio"
	NameForegroundRatio = "foreground_ratio"
	NameMeanIntensity   = "mean_intensity"
)

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates a new metrics evaluator
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.RegisterDefaultMetrics()
	return e
}

// RegisterDefaultMetrics registers all default metrics
func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register(NameMSE, NewMSE())
	e.Register(NamePSNR, NewPSNR())
	e.Register(NameContrastRatio, NewContrastRatio())
	e.Register(NameForegroundRatio, NewForegroundRatio())
	e.Register(NameMeanIntensity, NewMeanIntensity())
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, original, processed *core.ImageBuffer) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(original, processed)
}

// CalculateAll calculates all registered metrics, skipping the ones that fail
func (e *Evaluator) CalculateAll(original, processed *core.ImageBuffer) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}
	return results
}

// EvaluateStep calculates the metrics relevant to one processing step.
// binarized selects the foreground ratio instead of contrast preservation.
func (e *Evaluator) EvaluateStep(before, after *core.ImageBuffer, binarized bool) map[string]float64 {
	names := []string{NameMSE, NamePSNR, NameMeanIntensity}
	if binarized {
		names = append(names, NameForegroundRatio)
	} else {
		names = append(names, NameContrastRatio)
	}

	results := make(map[string]float64, len(names))
	for _, name := range names {
		if value, err := e.Calculate(name, before, after); err == nil {
			results[name] = value
		}
	}
	return results
}

// Loggable returns values in a form every log formatter can encode.
// Non-finite values become their string form ("+Inf", "NaN").
func Loggable(values map[string]float64) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for name, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			out[name] = strconv.FormatFloat(v, 'g', -1, 64)
			continue
		}
		out[name] = v
	}
	return out
}

// MetricInfo provides metadata about a metric
type MetricInfo struct {
	Name         string
	Description  string
	Range        [2]float64 // [min, max]
	HigherBetter bool
}

// GetMetricInfo returns information about all metrics
func (e *Evaluator) GetMetricInfo() map[string]MetricInfo {
	info := make(map[string]MetricInfo)
	for name, metric := range e.metrics {
		lo, hi := metric.GetRange()
		info[name] = MetricInfo{
			Name:         metric.GetName(),
			Description:  metric.GetDescription(),
			Range:        [2]float64{lo, hi},
			HigherBetter: metric.IsHigherBetter(),
		}
	}
	return info
}

// Report is a snapshot of every metric for one before/after pair
type Report struct {
	Metrics   map[string]float64 `json:"metrics"`
	Timestamp string             `json:"timestamp"`
}

// GenerateReport calculates all metrics
func (e *Evaluator) GenerateReport(original, processed *core.ImageBuffer) Report {
	return Report{
		Metrics:   e.CalculateAll(original, processed),
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
}

// Lines formats the report one metric per line, sorted by name
func (r Report) Lines() []string {
	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %.4f", name, r.Metrics[name]))
	}
	return lines
}
