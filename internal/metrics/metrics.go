// Package metrics records generation metrics on a private Prometheus
// registry and can flush them to a node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config controls metric export.
type Config struct {
	Enabled bool `yaml:"enabled"`
	// TextfilePath receives the exposition text after each command.
	TextfilePath string `yaml:"textfile_path"`
}

// Recorder owns one registry and the lvmaze collectors on it.
type Recorder struct {
	registry *prometheus.Registry

	runs      *prometheus.CounterVec
	failures  *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	cells     *prometheus.HistogramVec
	deadEnds  prometheus.Histogram
	diameter  prometheus.Histogram
	duration  *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmaze_runs_total",
			Help: "Mazes generated, by topology and algorithm",
		}, []string{"topology", "algorithm"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmaze_failures_total",
			Help: "Generation requests rejected or failed, by stage",
		}, []string{"stage"}),
		exhausted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmaze_step_budget_exhausted_total",
			Help: "Carving runs stopped by the step budget",
		}, []string{"algorithm"}),
		cells: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvmaze_cells",
			Help:    "Unmasked cells per maze",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"topology"}),
		deadEnds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvmaze_dead_end_ratio",
			Help:    "Dead ends divided by cells",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		diameter: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvmaze_diameter_cells",
			Help:    "Longest shortest path length",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvmaze_generate_duration_seconds",
			Help:    "Wall time of maze.Generate",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"algorithm"}),
	}
}

// Registry exposes the registry for handlers and tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one finished maze.
func (r *Recorder) Observe(res *maze.Result) {
	if res == nil {
		return
	}
	top, algo := res.Config.Topology.String(), res.Carve.Algorithm
	r.runs.WithLabelValues(top, algo).Inc()
	if res.Carve.Exhausted {
		r.exhausted.WithLabelValues(algo).Inc()
	}
	r.cells.WithLabelValues(top).Observe(float64(res.Stats.Cells))
	if res.Stats.Cells > 0 {
		r.deadEnds.Observe(float64(res.Stats.DeadEnds) / float64(res.Stats.Cells))
	}
	r.diameter.Observe(float64(res.Diameter.Length))
	r.duration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
}

// Failure counts an error at stage ("config", "generate", "store", "export").
func (r *Recorder) Failure(stage string) {
	r.failures.WithLabelValues(stage).Inc()
}

// WriteTextfile atomically writes the exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("metrics: create directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}
	return nil
}
