package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JudgementsTotal counts finished judge runs by language and outcome status.
	JudgementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minijudge_judgements_total",
			Help: "Total number of judged runs",
		},
		[]string{"language", "status"},
	)

	// StageDuration tracks compile and execute stage durations in seconds.
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "minijudge_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"language", "stage"},
	)

	// WorkersActive tracks the number of currently busy worker goroutines.
	WorkersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "minijudge_workers_active",
			Help: "Number of currently active worker goroutines",
		},
	)

	// PipelineFaults counts internal pipeline failures (not user code errors).
	PipelineFaults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "minijudge_pipeline_faults_total",
			Help: "Total number of internal judge pipeline faults",
		},
	)
)
