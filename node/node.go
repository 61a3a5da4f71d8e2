// Package node ties the chain, account map, mempool, consensus round, and
// peer set into a single coarse-locked unit: the one logical writer the
// rest of the system dispatches onto, whether the trigger is an inbound
// HTTP event or the round clock.
package node

import (
	"context"
	"log"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftchain/driftchain/consensus"
	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/crypto"
	"github.com/driftchain/driftchain/events"
	"github.com/driftchain/driftchain/gossip"
	"github.com/driftchain/driftchain/telemetry"
	"github.com/driftchain/driftchain/validation"
)

// Node is the single-writer owner of all mutable chain state. mu guards
// chain, accounts, mempool, the broadcast dedup sets, and peers; it is
// held only for short critical sections and released across every
// outbound RPC fan-out.
type Node struct {
	mu sync.Mutex

	selfAddr string
	params   validation.Params

	privKey crypto.PrivateKey
	hasKey  bool

	chain    *core.Chain
	accounts core.AccountMap
	mempool  *core.Mempool

	round *consensus.Round
	peers *gossip.Peers

	txBroadcast    *gossip.BroadcastSet
	blockBroadcast *gossip.BroadcastSet
	// randBroadcast is keyed by ValidatorRand.Key() (prev_block_hash_hex +
	// ":" + validator_pk_hex), a composite identity distinct from any tx
	// or block hash, so it cannot share either of those sets.
	randBroadcast *gossip.BroadcastSet

	client gossip.RPCClient
	clock  consensus.Clock

	// metrics is nil when the process wired no Prometheus registry; every
	// call site guards on that before touching it.
	metrics *telemetry.Metrics

	// emitter is nil when the process wired no subscribers; every call
	// site guards on that before touching it.
	emitter *events.Emitter
}

// Config bundles the construction-time dependencies the spec's Design
// Note on lifted global state calls for: consensus parameters, the
// outbound transport, the clock, and (optionally) this node's signing
// key.
type Config struct {
	SelfAddr string
	Params   validation.Params
	Client   gossip.RPCClient
	Clock    consensus.Clock
	PrivKey  *crypto.PrivateKey // nil: node cannot emit rand or propose
	Metrics  *telemetry.Metrics // nil: metrics disabled
	Emitter  *events.Emitter    // nil: no local subscribers
}

// New constructs a Node with an empty chain/account map/mempool/peer set.
func New(cfg Config) *Node {
	n := &Node{
		selfAddr:       cfg.SelfAddr,
		params:         cfg.Params,
		chain:          core.NewChain(),
		accounts:       core.NewAccountMap(),
		mempool:        core.NewMempool(),
		round:          consensus.NewRound(),
		peers:          gossip.NewPeers(),
		txBroadcast:    gossip.NewBroadcastSet(),
		blockBroadcast: gossip.NewBroadcastSet(),
		randBroadcast:  gossip.NewBroadcastSet(),
		client:         cfg.Client,
		clock:          cfg.Clock,
		metrics:        cfg.Metrics,
		emitter:        cfg.Emitter,
	}
	if cfg.PrivKey != nil {
		n.privKey = *cfg.PrivKey
		n.hasKey = true
	}
	return n
}

// SeedChain installs a chain and its reduced account map at startup,
// either from init_blockchain_path or from a constructed genesis block.
// Must be called before Bootstrap/RunRoundClock.
func (n *Node) SeedChain(chain *core.Chain, accounts core.AccountMap) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chain = chain
	n.accounts = accounts
}

// Bootstrap runs the gossip join sequence against seedPeers. If it
// discovers a longer valid chain than the one currently installed, that
// chain replaces the local one.
func (n *Node) Bootstrap(ctx context.Context, seedPeers []string, now float64) error {
	n.mu.Lock()
	localLen := n.chain.Length()
	n.mu.Unlock()

	chain, accounts, err := gossip.Bootstrap(ctx, n.client, n.peers, n.selfAddr, seedPeers, n.params, now)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if chain.Length() > localLen {
		n.chain = chain
		n.accounts = accounts
	}
	return nil
}

// HeadHash returns the current head's block hash, or nil for an empty
// chain.
func (n *Node) HeadHash() *string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.headHashLocked()
}

func (n *Node) headHashLocked() *string {
	head := n.chain.Head()
	if head == nil {
		return nil
	}
	hash := head.BlockHash
	return &hash
}

// ChainList returns the chain head-first, the wire shape for GET
// /blockchain.
func (n *Node) ChainList() []*core.Block {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.chain.ToList()
}

// KnownPeers returns the current peer address list.
func (n *Node) KnownPeers() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.peers.List()
}

// AcceptPeer admits a newly announced peer address.
func (n *Node) AcceptPeer(address string) {
	n.mu.Lock()
	n.peers.Add(address)
	n.refreshGaugesLocked()
	n.mu.Unlock()

	n.emit(events.Event{Type: events.EventPeerJoined, Data: map[string]any{"address": address}})
}

// emit delivers ev to the registered emitter, if any. Safe to call with
// or without mu held since Emitter has its own lock.
func (n *Node) emit(ev events.Event) {
	if n.emitter == nil {
		return
	}
	n.emitter.Emit(ev)
}

// refreshGaugesLocked pushes the current peer and mempool sizes to the
// registered metrics, if any. Must be called with mu held.
func (n *Node) refreshGaugesLocked() {
	if n.metrics == nil {
		return
	}
	n.metrics.PeerSetSize.Set(float64(n.peers.Len()))
	n.metrics.MempoolSize.Set(float64(n.mempool.Size()))
}

// recordRejectLocked increments the vec selected out of the metrics set
// with the rejecting error's kind, or "unknown" for an untyped error. A
// nil metrics set (the metrics-disabled case) is a no-op.
func (n *Node) recordRejectLocked(pick func(*telemetry.Metrics) *prometheus.CounterVec, err error) {
	if n.metrics == nil {
		return
	}
	vec := pick(n.metrics)
	kind, ok := validation.KindOf(err)
	if !ok {
		vec.WithLabelValues("unknown").Inc()
		return
	}
	vec.WithLabelValues(string(kind)).Inc()
}

func (n *Node) logf(format string, args ...any) {
	log.Printf("[node] "+format, args...)
}
