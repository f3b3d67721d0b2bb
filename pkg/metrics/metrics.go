package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded by the contact gateway.
const (
	OutcomeSent          = "sent"
	OutcomeInvalid       = "invalid"
	OutcomeThrottled     = "throttled"
	OutcomeDispatchError = "dispatch_error"
)

// Metrics exposes counters/histograms for the portfolio API.
type Metrics struct {
	submissions     *prometheus.CounterVec
	limiterFallback prometheus.Counter
	leadArchive     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	wizardEvents    *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact submissions by outcome",
		}, []string{"outcome"}),
		limiterFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "ratelimit_fallback_total",
			Help:      "Rate-limit checks answered from memory because Redis failed",
		}),
		leadArchive: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "lead_archive_total",
			Help:      "Lead archive writes by status",
		}, []string{"status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		wizardEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "wizard",
			Name:      "events_total",
			Help:      "Brief wizard analytics events",
		}, []string{"event"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.limiterFallback, m.leadArchive, m.requestDuration, m.wizardEvents)
	return m
}

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveLimiterFallback() {
	if m == nil {
		return
	}
	m.limiterFallback.Inc()
}

func (m *Metrics) ObserveLeadArchive(ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.leadArchive.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Track counts a wizard analytics event. Properties are not used as labels
// to keep cardinality bounded.
func (m *Metrics) Track(event string, _ map[string]string) {
	if m == nil {
		return
	}
	m.wizardEvents.WithLabelValues(event).Inc()
}
