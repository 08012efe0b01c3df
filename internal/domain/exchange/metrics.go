package exchange

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Miss reasons used as the "reason" label.
const (
	MissAbsent        = "absent"
	MissExpired       = "expired"
	MissMissingTarget = "missing_target"
)

// Metrics holds the Prometheus collectors of the exchange cache.
type Metrics struct {
	CacheHits       prometheus.Counter
	CacheMisses     *prometheus.CounterVec
	RefreshFailures prometheus.Counter
	RefreshDuration prometheus.Histogram
}

// NewMetrics creates and registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "oafund_fx_cache_hits_total",
			Help: "Total number of exchange rates served from a fresh snapshot",
		}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oafund_fx_cache_misses_total",
			Help: "Total number of exchange rate lookups that required a provider call",
		}, []string{"reason"}),
		RefreshFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "oafund_fx_refresh_failures_total",
			Help: "Total number of failed provider refreshes",
		}),
		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "oafund_fx_refresh_duration_seconds",
			Help:    "Duration of provider refreshes in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) miss(reason string) {
	if m != nil {
		m.CacheMisses.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) refreshed(seconds float64, failed bool) {
	if m == nil {
		return
	}
	m.RefreshDuration.Observe(seconds)
	if failed {
		m.RefreshFailures.Inc()
	}
}
