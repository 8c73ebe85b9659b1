package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bowlctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bowlctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	ballsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bowlctl",
			Subsystem: "game",
			Name:      "balls_total",
			Help:      "Balls accepted by the scorer.",
		},
		[]string{"ball"},
	)
	ballsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bowlctl",
			Subsystem: "game",
			Name:      "rejected_balls_total",
			Help:      "Balls rejected by the scorer, by error kind.",
		},
		[]string{"reason"},
	)
	marks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bowlctl",
			Subsystem: "game",
			Name:      "marks_total",
			Help:      "Strikes and spares bowled.",
		},
		[]string{"kind"},
	)
	games = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bowlctl",
			Subsystem: "game",
			Name:      "games_total",
			Help:      "Games finished, by outcome.",
		},
		[]string{"outcome"},
	)
)

const (
	MarkStrike = "strike"
	MarkSpare  = "spare"

	OutcomeCompleted = "completed"
	OutcomeAborted   = "aborted"
	OutcomeCanceled  = "canceled"
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, ballsRecorded, ballsRejected, marks, games)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordBall(ball int) {
	RegisterMetrics()
	ballsRecorded.WithLabelValues(strconv.Itoa(ball)).Inc()
}

func RecordRejectedBall(reason string) {
	RegisterMetrics()
	ballsRejected.WithLabelValues(reason).Inc()
}

func RecordMark(kind string) {
	RegisterMetrics()
	marks.WithLabelValues(kind).Inc()
}

func RecordGame(outcome string) {
	RegisterMetrics()
	games.WithLabelValues(outcome).Inc()
}
