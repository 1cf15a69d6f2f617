// Package metrics exposes Prometheus counters for the draft engine and its HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns every metric of the service. A nil *Recorder is valid and records nothing.
type Recorder struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	constLabels    prometheus.Labels
	registry       *prometheus.Registry

	picks             *prometheus.CounterVec
	rejections        *prometheus.CounterVec
	draftsCompleted   prometheus.Counter
	draftsReset       prometheus.Counter
	candidatePoolSize prometheus.Histogram

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func New(opts ...Option) *Recorder {
	r := &Recorder{
		namespace:      "fut",
		subsystem:      "draft",
		latencyBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r.initialize()
	return r
}

func (r *Recorder) initialize() {
	auto := promauto.With(r.registry)

	r.picks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        "picks_total",
		Help:        "Confirmed picks by slot kind",
		ConstLabels: r.constLabels,
	}, []string{"slot_kind"})

	r.rejections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        "rejected_operations_total",
		Help:        "Draft operations rejected by reason",
		ConstLabels: r.constLabels,
	}, []string{"reason"})

	r.draftsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        "drafts_completed_total",
		Help:        "Drafts that filled every slot",
		ConstLabels: r.constLabels,
	})

	r.draftsReset = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        "drafts_reset_total",
		Help:        "Explicit draft resets",
		ConstLabels: r.constLabels,
	})

	r.candidatePoolSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        "candidate_pool_size",
		Help:        "Number of candidates offered per slot click",
		Buckets:     []float64{0, 1, 2, 3, 4, 5},
		ConstLabels: r.constLabels,
	})

	r.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "HTTP requests by route, method and status code",
		ConstLabels: r.constLabels,
	}, []string{"route", "method", "status_code"})

	r.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   r.namespace,
		Subsystem:   "http",
		Name:        "request_duration_seconds",
		Help:        "HTTP request latency in seconds",
		Buckets:     r.latencyBuckets,
		ConstLabels: r.constLabels,
	}, []string{"route", "method"})
}

func (r *Recorder) RecordPick(slotKind string) {
	if r == nil {
		return
	}
	r.picks.WithLabelValues(slotKind).Inc()
}

func (r *Recorder) RecordRejection(reason string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(reason).Inc()
}

func (r *Recorder) RecordDraftCompleted() {
	if r == nil {
		return
	}
	r.draftsCompleted.Inc()
}

func (r *Recorder) RecordDraftReset() {
	if r == nil {
		return
	}
	r.draftsReset.Inc()
}

func (r *Recorder) ObserveCandidatePool(size int) {
	if r == nil {
		return
	}
	r.candidatePoolSize.Observe(float64(size))
}

func (r *Recorder) RecordHTTPRequest(route, method string, statusCode int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
