package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the showcase service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Catalog metrics
	ComponentsRegistered prometheus.Gauge
	PreviewsRegistered   prometheus.Gauge
	SnapshotBuilds       prometheus.Counter
	PreviewRenders       *prometheus.CounterVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// New creates a metrics collector registered against reg. Each server gets
// its own registerer so tests can build collectors without colliding on
// the global default.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "showcase_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "showcase_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		ComponentsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "showcase_components_registered",
			Help: "Distinct components in the latest catalog snapshot",
		}),
		PreviewsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "showcase_previews_registered",
			Help: "Components with a preview in the latest catalog snapshot",
		}),
		SnapshotBuilds: factory.NewCounter(prometheus.CounterOpts{
			Name: "showcase_snapshot_builds_total",
			Help: "Total number of catalog snapshots built",
		}),
		PreviewRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "showcase_preview_renders_total",
				Help: "Total number of preview renders by component",
			},
			[]string{"component"},
		),

		WSConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "showcase_ws_connections",
			Help: "Active WebSocket connections",
		}),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "showcase_ws_messages_total",
				Help: "Total number of WebSocket messages by type",
			},
			[]string{"type"},
		),

		Uptime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "showcase_uptime_seconds",
			Help: "Service uptime in seconds",
		}),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordSnapshot records one catalog snapshot build and its sizes.
func (m *Metrics) RecordSnapshot(components, previews int) {
	m.SnapshotBuilds.Inc()
	m.ComponentsRegistered.Set(float64(components))
	m.PreviewsRegistered.Set(float64(previews))
}
