// Package telemetry exposes the node's Prometheus metrics: the
// observability surface the spec itself never mandates inside the core
// components, but which every long-running node process in the pack
// carries for production operation.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the counters and gauges emitted by a node's gossip and
// consensus activity.
type Metrics struct {
	TransactionsAccepted prometheus.Counter
	TransactionsRejected *prometheus.CounterVec
	BlocksAccepted       prometheus.Counter
	BlocksRejected       *prometheus.CounterVec
	RandsAccepted        prometheus.Counter
	RandsRejected        *prometheus.CounterVec
	ElectionsRun         prometheus.Counter
	GossipSends          prometheus.Counter
	PeerSetSize          prometheus.Gauge
	MempoolSize          prometheus.Gauge
}

// NewMetrics registers and returns a fresh Metrics set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransactionsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "driftchain_transactions_accepted_total",
			Help: "Transactions admitted to the mempool.",
		}),
		TransactionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftchain_transactions_rejected_total",
			Help: "Transactions rejected, labeled by error kind.",
		}, []string{"kind"}),
		BlocksAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "driftchain_blocks_accepted_total",
			Help: "Blocks appended to the local chain.",
		}),
		BlocksRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftchain_blocks_rejected_total",
			Help: "Blocks rejected, labeled by error kind.",
		}, []string{"kind"}),
		RandsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "driftchain_rands_accepted_total",
			Help: "Validator rand contributions recorded.",
		}),
		RandsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftchain_rands_rejected_total",
			Help: "Validator rand contributions rejected, labeled by error kind.",
		}, []string{"kind"}),
		ElectionsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "driftchain_elections_total",
			Help: "Deterministic elections run after quorum was reached.",
		}),
		GossipSends: factory.NewCounter(prometheus.CounterOpts{
			Name: "driftchain_gossip_sends_total",
			Help: "Outbound amplification sends issued.",
		}),
		PeerSetSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "driftchain_peer_set_size",
			Help: "Current known-peer count.",
		}),
		MempoolSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "driftchain_mempool_size",
			Help: "Current pending transaction count.",
		}),
	}
}
