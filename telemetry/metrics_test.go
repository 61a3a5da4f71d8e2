package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftchain/driftchain/telemetry"
)

func TestNewMetricsRegistersCountersAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.TransactionsAccepted.Inc()
	m.TransactionsRejected.WithLabelValues("TIMESTAMP_FUTURE").Inc()
	m.PeerSetSize.Set(3)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected at least one registered metric family")
	}

	var found bool
	for _, fam := range families {
		if fam.GetName() == "driftchain_transactions_accepted_total" {
			found = true
			if got := fam.Metric[0].GetCounter().GetValue(); got != 1 {
				t.Fatalf("counter value = %v, want 1", got)
			}
		}
	}
	if !found {
		t.Fatal("driftchain_transactions_accepted_total was not registered")
	}
}
