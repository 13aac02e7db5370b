package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/configtree/pkg/tree"
)

// Recorder collects validation metrics in its own registry, so that a run can
// be exported as a node_exporter textfile without global state.
type Recorder struct {
	registry    *prometheus.Registry
	validated   *prometheus.CounterVec
	walks       *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		validated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "configtree_versions_validated_total",
				Help: "Version directories that passed every check",
			},
			[]string{"environment"},
		),
		walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "configtree_walks_total",
				Help: "Completed walks by layout and result kind",
			},
			[]string{"layout", "kind"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "configtree_walk_duration_seconds",
			Help:    "Duration of configuration tree walks",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "configtree_last_walk_success",
			Help: "1 if the last walk validated the whole tree, 0 otherwise",
		}),
	}
	r.registry.MustRegister(r.validated, r.walks, r.duration, r.lastSuccess)
	return r
}

// Hooks returns walker hooks feeding this recorder.
func (r *Recorder) Hooks() tree.Hooks {
	return tree.Hooks{
		OnVersionValidated: func(_ context.Context, e *tree.VersionEvent) {
			r.validated.WithLabelValues(e.Environment).Inc()
		},
		OnWalkComplete: func(_ context.Context, e *tree.WalkEvent) {
			kind := string(e.Kind)
			if kind == "" {
				kind = "ok"
			}
			r.walks.WithLabelValues(string(e.Layout), kind).Inc()
			r.duration.Observe(e.Duration.Seconds())
			if e.Err == nil {
				r.lastSuccess.Set(1)
			} else {
				r.lastSuccess.Set(0)
			}
		},
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the collected metrics in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
