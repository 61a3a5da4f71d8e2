package node

import (
	"context"
	"crypto/rand"
	"encoding/binary"

	"github.com/driftchain/driftchain/consensus"
	"github.com/driftchain/driftchain/core"
)

// RunRoundClock drives rand emission and block proposal from clock ticks
// until stop is closed. It blocks, so callers run it in its own
// goroutine.
func (n *Node) RunRoundClock(ctx context.Context, stop <-chan struct{}) {
	for phase := range n.clock.Ticks(stop) {
		now := n.clock.Now()
		switch phase {
		case consensus.PhaseEmit:
			n.emitRand(ctx, now)
		case consensus.PhasePropose:
			n.proposeBlock(ctx, now)
		}
	}
}

// emitRand constructs, signs, records, and broadcasts this node's rand
// contribution for the current head, provided it holds a key whose stake
// clears the eligibility threshold. A node without a private key, or
// whose stake doesn't qualify, takes no action.
func (n *Node) emitRand(ctx context.Context, now float64) {
	if !n.hasKey {
		return
	}

	n.mu.Lock()
	pubHex := n.privKey.Public().Hex()
	account := n.accounts.Peek(pubHex)
	if account == nil || !n.params.IsValidator(account.Stake) {
		n.mu.Unlock()
		return
	}
	headHash := n.headHashLocked()
	parent := ""
	if headHash != nil {
		parent = *headHash
	}
	n.mu.Unlock()

	vr := &core.ValidatorRand{
		ValidatorPKHex:   pubHex,
		PrevBlockHashHex: parent,
		Timestamp:        now,
		Rand:             randomUint64(),
	}
	vr.Sign(n.privKey)

	if err := n.AcceptRand(ctx, vr, n.selfAddr, now); err != nil {
		n.logf("emit rand rejected locally: %v", err)
	}
}

// proposeBlock assembles and broadcasts a block if this node's key was
// elected for the current head. If the round clock fires with the
// eligible and submitted sets unequal, it only logs the shortfall (the
// missing-rands diagnostic the spec reserves for future slashing work).
func (n *Node) proposeBlock(ctx context.Context, now float64) {
	if !n.hasKey {
		return
	}

	n.mu.Lock()
	pubHex := n.privKey.Public().Hex()
	headHash := n.headHashLocked()
	parent := ""
	if headHash != nil {
		parent = *headHash
	}

	eligible := consensus.Eligible(n.accounts, n.params.ValidatorMinStake)
	rands := n.round.Rands(parent)
	if !consensus.QuorumReached(eligible, rands, n.params.MinValidatorCnt) {
		missing := consensus.MissingValidators(eligible, rands)
		n.mu.Unlock()
		if len(missing) > 0 {
			n.logf("round for head %s missing rands from %v, skipping election", parent, missing)
		}
		return
	}

	elected, ok := n.round.Elected(parent)
	if !ok {
		n.mu.Unlock()
		return
	}
	if elected != pubHex {
		n.mu.Unlock()
		return
	}

	pending := n.mempool.All()
	txs := consensus.SelectTransactions(pending, n.accounts, n.params.MaxTxPerBlock)
	n.mu.Unlock()

	block := core.NewBlock(headHash, pubHex, now, txs)
	block.Sign(n.privKey)

	if err := n.AcceptBlock(ctx, block, n.selfAddr, now); err != nil {
		n.logf("self-proposed block rejected locally: %v", err)
	}
}

func randomUint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing indicates a broken system entropy source;
		// fall back to a time-independent but still unpredictable-enough
		// value is not possible here, so surface it loudly instead of
		// silently degrading randomness security properties.
		panic("node: crypto/rand unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf[:])
}
