package setup

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsRegistry = prometheus.NewRegistry()

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agsetup",
			Subsystem: "step",
			Name:      "duration_seconds",
			Help:      "Duration of setup steps in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 9),
		},
		[]string{"step"},
	)

	stepResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agsetup",
			Subsystem: "step",
			Name:      "results_total",
			Help:      "Setup step outcomes",
		},
		[]string{"step", "result"},
	)
)

func init() {
	metricsRegistry.MustRegister(stepDuration, stepResults)
}

func observeStep(step string, took time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	stepDuration.WithLabelValues(step).Observe(took.Seconds())
	stepResults.WithLabelValues(step, result).Inc()
}

// writeMetrics dumps the step metrics in node-exporter textfile format.
func writeMetrics(path string) error {
	return prometheus.WriteToTextfile(path, metricsRegistry)
}
