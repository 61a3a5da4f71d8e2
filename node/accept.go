package node

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftchain/driftchain/consensus"
	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/events"
	"github.com/driftchain/driftchain/telemetry"
	"github.com/driftchain/driftchain/validation"
)

// AcceptTransaction validates tx against the live account map, admits it
// to the mempool, and amplifies it to peers other than origin. A
// transaction already pending is a silent no-op, matching gossip
// idempotence.
func (n *Node) AcceptTransaction(ctx context.Context, tx *core.Transaction, origin string, now float64) error {
	n.mu.Lock()
	if n.mempool.Has(tx.TxHash) {
		n.mu.Unlock()
		return nil
	}
	account := n.accounts.Peek(tx.Source.SourcePKHex)
	isInitialBlock := n.chain.Head() == nil
	if err := validation.Transaction(tx, account, isInitialBlock, n.params, now); err != nil {
		n.recordRejectLocked(func(m *telemetry.Metrics) *prometheus.CounterVec { return m.TransactionsRejected }, err)
		n.mu.Unlock()
		return err
	}
	if err := n.mempool.Add(tx); err != nil {
		n.mu.Unlock()
		return err
	}
	if n.metrics != nil {
		n.metrics.TransactionsAccepted.Inc()
	}
	n.refreshGaugesLocked()
	targets := n.amplifyTargetsLocked(n.txBroadcast, tx.TxHash, origin)
	n.mu.Unlock()

	n.emit(events.Event{Type: events.EventTxAccepted, Hash: tx.TxHash})
	n.amplify(ctx, targets, tx.TxHash, "/validation/transaction", txPayload(tx, n.selfAddr))
	return nil
}

// AcceptBlock validates block against the current head and account map,
// appends it, folds its transactions and reward into the account map,
// evicts its transactions from the mempool, and amplifies it. A block
// already equal to the current head is a silent no-op.
func (n *Node) AcceptBlock(ctx context.Context, block *core.Block, origin string, now float64) error {
	n.mu.Lock()
	if head := n.chain.Head(); head != nil && head.BlockHash == block.BlockHash {
		n.mu.Unlock()
		return nil
	}

	headHash := n.headHashLocked()
	var expectedValidator *string
	if headHash != nil {
		if pk, ok := n.round.Elected(*headHash); ok {
			expectedValidator = &pk
		}
	}

	if err := validation.Block(block, n.accounts, expectedValidator, headHash, n.params, now); err != nil {
		n.recordRejectLocked(func(m *telemetry.Metrics) *prometheus.CounterVec { return m.BlocksRejected }, err)
		n.mu.Unlock()
		return err
	}
	if err := n.chain.AddBlock(block); err != nil {
		n.mu.Unlock()
		return err
	}
	n.accounts.ApplyBlock(block, n.params.ValidationReward)

	txHashes := make([]string, len(block.Txs))
	for i, tx := range block.Txs {
		txHashes[i] = tx.TxHash
	}
	n.mempool.Remove(txHashes)
	for _, h := range txHashes {
		n.txBroadcast.Evict(h)
	}

	if n.metrics != nil {
		n.metrics.BlocksAccepted.Inc()
	}
	n.refreshGaugesLocked()
	targets := n.amplifyTargetsLocked(n.blockBroadcast, block.BlockHash, origin)
	n.mu.Unlock()

	n.emit(events.Event{Type: events.EventBlockAccepted, Hash: block.BlockHash, Data: map[string]any{"validator_pk_hex": block.ValidatorPKHex}})
	n.amplify(ctx, targets, block.BlockHash, "/validation/block", blockPayload(block, n.selfAddr))
	return nil
}

// AcceptRand validates a validator's rand, records it (first-wins per
// validator per parent), re-runs the election, and amplifies.
func (n *Node) AcceptRand(ctx context.Context, vr *core.ValidatorRand, origin string, now float64) error {
	if err := validation.Rand(vr, now); err != nil {
		n.mu.Lock()
		n.recordRejectLocked(func(m *telemetry.Metrics) *prometheus.CounterVec { return m.RandsRejected }, err)
		n.mu.Unlock()
		return err
	}

	n.mu.Lock()
	isNew := n.round.SubmitRand(vr.PrevBlockHashHex, vr.ValidatorPKHex, vr.Rand)
	if !isNew {
		n.mu.Unlock()
		return nil
	}
	if n.metrics != nil {
		n.metrics.RandsAccepted.Inc()
	}
	elected, wasElected := n.reelectLocked(vr.PrevBlockHashHex)
	targets := n.amplifyTargetsLocked(n.randBroadcast, vr.Key(), origin)
	n.mu.Unlock()

	n.emit(events.Event{Type: events.EventRandAccepted, Hash: vr.Key()})
	if wasElected {
		n.emit(events.Event{
			Type: events.EventValidatorWon,
			Hash: vr.PrevBlockHashHex,
			Data: map[string]any{"validator_pk_hex": elected},
		})
	}
	n.amplify(ctx, targets, vr.Key(), "/validator/rand", randPayload(vr))
	return nil
}

// reelectLocked re-runs the election for parentHash if quorum has been
// reached and no election is recorded yet for it. Returns the elected
// key and true if this call ran a fresh election. Must be called with
// mu held; the caller emits any resulting event after unlocking.
func (n *Node) reelectLocked(parentHash string) (string, bool) {
	if _, already := n.round.Elected(parentHash); already {
		return "", false
	}
	rands := n.round.Rands(parentHash)
	eligible := consensus.Eligible(n.accounts, n.params.ValidatorMinStake)
	if !consensus.QuorumReached(eligible, rands, n.params.MinValidatorCnt) {
		return "", false
	}
	pk, ok := consensus.Elect(n.accounts, rands)
	if !ok {
		return "", false
	}
	n.round.SetElected(parentHash, pk)
	if n.metrics != nil {
		n.metrics.ElectionsRun.Inc()
	}
	return pk, true
}
