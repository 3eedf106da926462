package sanitize

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNoOpMetricsDiscardsDecisions(t *testing.T) {
	// RecordDecision must not panic and has no observable effect.
	NoOpMetrics{}.RecordDecision(DecisionContext{DataType: StudentRecord, FieldName: "ssn", Action: Drop})
}

func TestSetMetricsDefaultsNilToNoOp(t *testing.T) {
	defer SetMetrics(NoOpMetrics{})
	SetMetrics(nil)
	if _, ok := activeMetrics.(NoOpMetrics); !ok {
		t.Errorf("expected SetMetrics(nil) to install NoOpMetrics, got %T", activeMetrics)
	}
}

func TestPrometheusMetricsRecordsDecision(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(reg)

	pm.RecordDecision(DecisionContext{
		DataType:   StudentRecord,
		FieldName:  "ssn",
		Action:     Drop,
		Capability: CapStudentBasicInfo,
	})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	var found *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "heronix_sanitize_field_decisions_total" {
			found = f
			break
		}
	}
	if found == nil {
		t.Fatal("expected heronix_sanitize_field_decisions_total metric family to be registered")
	}
	if len(found.Metric) != 1 {
		t.Fatalf("expected 1 metric sample, got %d", len(found.Metric))
	}
	if got := found.Metric[0].Counter.GetValue(); got != 1 {
		t.Errorf("expected counter value 1, got %v", got)
	}
}
