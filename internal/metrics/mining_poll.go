package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	miningPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mining_poll",
		Name:      "polls_total",
		Help:      "Count of mining status polls.",
	}, []string{"status"})
	miningPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mining_poll",
		Name:      "poll_duration_seconds",
		Help:      "Duration of mining status polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	miningSessionPolls = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mining_poll",
		Name:      "session_polls",
		Help:      "Number of polls a mining session took to finish.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})
)

// MiningPoll tracks metrics for the mining status poller.
type MiningPoll struct{}

// NewMiningPoll constructs a MiningPoll collector.
func NewMiningPoll() *MiningPoll {
	return &MiningPoll{}
}

// ObservePoll records a single status poll.
func (MiningPoll) ObservePoll(err error, started time.Time) {
	status := statusOf(err)
	miningPollTotal.WithLabelValues(status).Inc()
	miningPollDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveSession records a finished mining session.
func (MiningPoll) ObserveSession(polls int) {
	miningSessionPolls.Observe(float64(polls))
}
