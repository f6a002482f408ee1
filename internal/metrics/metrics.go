// Package metrics exposes trace counters and histograms to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Algorithm label values.
const (
	Karatsuba   = "karatsuba"
	ClosestPair = "closest_pair"
)

// Recorder owns the algotrace collectors. The zero value is not usable;
// build one with New. A nil *Recorder ignores every observation.
type Recorder struct {
	gatherer prometheus.Gatherer

	traces      *prometheus.CounterVec
	errors      *prometheus.CounterVec
	cacheHits   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	calls       prometheus.Histogram
	comparisons prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()

	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves g from
// Handler. It panics on duplicate registration, like MustRegister.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Recorder {
	r := &Recorder{
		gatherer: g,
		traces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_traces_total",
			Help: "Traces produced, by algorithm",
		}, []string{"algorithm"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_trace_errors_total",
			Help: "Rejected trace requests, by algorithm",
		}, []string{"algorithm"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_cache_hits_total",
			Help: "Traces served from cache, by algorithm",
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algotrace_trace_duration_seconds",
			Help:    "Engine time per trace",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"algorithm"}),
		calls: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "algotrace_karatsuba_calls",
			Help:    "Recursive calls per karatsuba trace",
			Buckets: []float64{1, 4, 13, 40, 121, 364, 1093},
		}),
		comparisons: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "algotrace_closestpair_comparisons",
			Help:    "Distance computations per closest-pair trace",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
	}
	reg.MustRegister(r.traces, r.errors, r.cacheHits, r.duration, r.calls, r.comparisons)

	return r
}

// ObserveKaratsuba records one finished multiplication trace.
func (r *Recorder) ObserveKaratsuba(elapsed time.Duration, calls int) {
	if r == nil {
		return
	}
	r.traces.WithLabelValues(Karatsuba).Inc()
	r.duration.WithLabelValues(Karatsuba).Observe(elapsed.Seconds())
	r.calls.Observe(float64(calls))
}

// ObserveClosestPair records one finished sweep trace.
func (r *Recorder) ObserveClosestPair(elapsed time.Duration, comparisons int) {
	if r == nil {
		return
	}
	r.traces.WithLabelValues(ClosestPair).Inc()
	r.duration.WithLabelValues(ClosestPair).Observe(elapsed.Seconds())
	r.comparisons.Observe(float64(comparisons))
}

// Error counts a rejected request for algorithm.
func (r *Recorder) Error(algorithm string) {
	if r == nil {
		return
	}
	r.errors.WithLabelValues(algorithm).Inc()
}

// CacheHit counts a trace served without running the engine.
func (r *Recorder) CacheHit(algorithm string) {
	if r == nil {
		return
	}
	r.cacheHits.WithLabelValues(algorithm).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
