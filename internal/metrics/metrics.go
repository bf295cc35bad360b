package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "gmdirectory"
)

type Metrics struct {
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	UpstreamInFlight        prometheus.Gauge

	ElapsedStreams prometheus.Gauge
}

// New Create and register all collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of requests sent to the chess.com API",
			},
			[]string{"code", "method"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of requests sent to the chess.com API in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
		UpstreamInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "upstream_requests_in_flight",
				Help:      "Current number of requests to the chess.com API awaiting a response",
			},
		),
		ElapsedStreams: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "elapsed_streams_active",
				Help:      "Current number of clients receiving live last online updates",
			},
		),
	}

	reg.MustRegister(
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.UpstreamInFlight,
		m.ElapsedStreams,
	)

	return m
}

// InstrumentTransport Wrap next (http.DefaultTransport if nil) to record upstream request metrics
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return promhttp.InstrumentRoundTripperInFlight(m.UpstreamInFlight,
		promhttp.InstrumentRoundTripperCounter(m.UpstreamRequestsTotal,
			promhttp.InstrumentRoundTripperDuration(m.UpstreamRequestDuration, next),
		),
	)
}
