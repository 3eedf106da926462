package sanitize

import "github.com/prometheus/client_golang/prometheus"

// MetricsCollector is an optional interface for observing classifier
// decisions. Implementations
// can track drop/mask/pass counts per field classification and per
// capability without changing the sanitizer's total, side-effect-free
// contract.
type MetricsCollector interface {
	RecordDecision(ctx DecisionContext)
}

// DecisionContext describes one field-classification decision.
type DecisionContext struct {
	DataType   DataType
	FieldName  string
	Action     Action
	MaskKind   MaskKind
	Capability Capability // empty if the decision wasn't capability-gated
}

// NoOpMetrics discards all decisions. Used when no collector is
// configured.
type NoOpMetrics struct{}

// RecordDecision implements MetricsCollector.
func (NoOpMetrics) RecordDecision(DecisionContext) {}

var activeMetrics MetricsCollector = NoOpMetrics{}

// SetMetrics installs the process-wide MetricsCollector. Pass NoOpMetrics{}
// to disable collection.
func SetMetrics(m MetricsCollector) {
	if m == nil {
		m = NoOpMetrics{}
	}
	activeMetrics = m
}

// PrometheusMetrics is a MetricsCollector backed by a Prometheus counter
// vector, labeled by data type, capability, and decision action. This is
// the client_golang-backed implementation of the MetricsCollector interface.
type PrometheusMetrics struct {
	decisions *prometheus.CounterVec
}

// NewPrometheusMetrics registers a counter vector on reg and returns a
// MetricsCollector backed by it.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heronix",
		Subsystem: "sanitize",
		Name:      "field_decisions_total",
		Help:      "Count of field-level sanitization decisions by data type, capability, and action.",
	}, []string{"data_type", "capability", "action"})

	reg.MustRegister(decisions)
	return &PrometheusMetrics{decisions: decisions}
}

// RecordDecision implements MetricsCollector.
func (p *PrometheusMetrics) RecordDecision(ctx DecisionContext) {
	action := "pass"
	switch ctx.Action {
	case Drop:
		action = "drop"
	case Mask:
		action = "mask"
	}
	p.decisions.WithLabelValues(string(ctx.DataType), string(ctx.Capability), action).Inc()
}
