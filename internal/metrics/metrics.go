// Package metrics records generation statistics in Prometheus format.
//
// The generator is a short-lived build step, so metrics live on a private
// registry and are exported to a node_exporter style textfile rather than
// served over HTTP.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage names used as the "stage" label of the duration histogram.
const (
	StageDerive = "derive"
	StageVerify = "verify"
	StageEncode = "encode"
	StageRender = "render"
	StageWrite  = "write"
)

// Recorder collects the metrics of a single generator run.
type Recorder struct {
	registry *prometheus.Registry

	rootsTotal    prometheus.Gauge
	rootWidth     prometheus.Gauge
	tableBytes    prometheus.Gauge
	success       prometheus.Gauge
	stageDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder backed by its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		rootsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nttparams_roots_total",
			Help: "Number of roots of unity in the generated table",
		}),
		rootWidth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nttparams_root_width",
			Help: "Hex digits per root record, excluding the terminator",
		}),
		tableBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nttparams_table_bytes",
			Help: "Size in bytes of the packed root table",
		}),
		success: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nttparams_generation_success",
			Help: "1 if the last generation produced an artifact, 0 otherwise",
		}),
		stageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nttparams_stage_duration_seconds",
				Help:    "Duration of each generation stage in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"stage"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveStage records how long stage took, measured from start.
func (r *Recorder) ObserveStage(stage string, start time.Time) {
	r.stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordTable records the shape of the packed table.
func (r *Recorder) RecordTable(roots, width, bytes int) {
	r.rootsTotal.Set(float64(roots))
	r.rootWidth.Set(float64(width))
	r.tableBytes.Set(float64(bytes))
}

// RecordOutcome marks the run as successful or failed.
func (r *Recorder) RecordOutcome(ok bool) {
	if ok {
		r.success.Set(1)
		return
	}
	r.success.Set(0)
}

// WriteTextfile writes the collected metrics to path in the Prometheus text
// exposition format, creating parent directories as needed.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating metrics directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
