// Package metrics exports bid admission metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

const namespace = "auction"

// BidMetrics implements bids.Metrics
type BidMetrics struct {
	registry  *prometheus.Registry
	admitted  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	admission prometheus.Histogram
	retries   prometheus.Counter
}

// NewBidMetrics registers the bid collectors, plus the Go and process
// collectors, on a fresh registry
func NewBidMetrics() *BidMetrics {
	m := &BidMetrics{
		registry: prometheus.NewRegistry(),
		admitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_admitted_total",
			Help:      "Bids appended to a ledger.",
		}, []string{"kind", "demo"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_rejected_total",
			Help:      "Bid and buy-now attempts that were refused.",
		}, []string{"reason"}),
		admission: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bid_admission_seconds",
			Help:      "Time spent in the bid admission critical section, retries included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bid_storage_retries_total",
			Help:      "Admissions retried after a storage failure.",
		}),
	}
	m.registry.MustRegister(
		m.admitted,
		m.rejected,
		m.admission,
		m.retries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

var _ bids.Metrics = (*BidMetrics)(nil)

func (m *BidMetrics) BidAdmitted(kind bids.Kind, demo bool) {
	m.admitted.WithLabelValues(string(kind), strconv.FormatBool(demo)).Inc()
}

func (m *BidMetrics) BidRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *BidMetrics) AdmissionDuration(d time.Duration) {
	m.admission.Observe(d.Seconds())
}

func (m *BidMetrics) StorageRetried() {
	m.retries.Inc()
}

// Registry exposes the underlying registry
func (m *BidMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *BidMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
