package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sceneRebuildTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scene",
		Name:      "rebuild_total",
		Help:      "Count of chain scene rebuilds.",
	})
	sceneRebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scene",
		Name:      "rebuild_duration_seconds",
		Help:      "Duration of chain scene rebuilds.",
		Buckets:   prometheus.DefBuckets,
	})
	sceneBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scene",
		Name:      "blocks",
		Help:      "Number of blocks currently rendered.",
	})
	sceneStaleResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scene",
		Name:      "stale_responses_total",
		Help:      "Count of chain responses discarded because a newer load was started.",
	})
	sceneFrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scene",
		Name:      "frame_duration_seconds",
		Help:      "Duration of a single animation frame including render.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms..256ms
	})
)

// Scene tracks metrics for the chain scene.
type Scene struct{}

// NewScene constructs a Scene collector.
func NewScene() *Scene {
	return &Scene{}
}

// ObserveRebuild records a rebuild that produced blocks visual blocks.
func (Scene) ObserveRebuild(blocks int, started time.Time) {
	sceneRebuildTotal.Inc()
	sceneRebuildDuration.Observe(time.Since(started).Seconds())
	sceneBlocks.Set(float64(blocks))
}

// ObserveStaleResponse records a discarded chain response.
func (Scene) ObserveStaleResponse() {
	sceneStaleResponsesTotal.Inc()
}

// ObserveFrame records an animation frame.
func (Scene) ObserveFrame(started time.Time) {
	sceneFrameDuration.Observe(time.Since(started).Seconds())
}
