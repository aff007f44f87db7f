package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Build outcomes
const (
	OutcomeOK        = "ok"
	OutcomeMalformed = "malformed"
)

var (
	sceneBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellviewer_scene_builds_total",
			Help: "Total number of scene builds by outcome",
		},
		[]string{"outcome"},
	)

	sceneBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wellviewer_scene_build_duration_seconds",
			Help:    "Scene build latency in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	sceneTracesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellviewer_scene_traces_total",
			Help: "Total number of traces emitted by kind",
		},
		[]string{"kind"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellviewer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)
)

// RecordBuild records one scene build
func RecordBuild(outcome string, duration time.Duration, wells, lithologies int) {
	sceneBuildsTotal.WithLabelValues(outcome).Inc()
	sceneBuildDuration.Observe(duration.Seconds())
	sceneTracesTotal.WithLabelValues("well_path").Add(float64(wells))
	sceneTracesTotal.WithLabelValues("lithology_volume").Add(float64(lithologies))
}

// RecordRequest records one served HTTP request
func RecordRequest(method string, status int) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler exposes the registered collectors
func Handler() http.Handler {
	return promhttp.Handler()
}
