package consensus

import (
	"math/big"
	"sort"

	"github.com/driftchain/driftchain/core"
)

// stakeEntry pairs a validator's public key with its stake for the
// sorted-by-stake walk the election performs.
type stakeEntry struct {
	pkHex string
	stake int64
}

// Elect runs the deterministic stake-weighted election described in the
// spec: sort (pk, stake) ascending by stake, tie-broken by pk; sum the
// pooled rands and reduce modulo total stake; walk the cumulative-stake
// prefix and pick the first entry whose cumulative stake strictly exceeds
// that remainder. Stakes and rands use math/big throughout, since their
// sum can exceed a 64-bit accumulator well before total participation
// does.
//
// Callers must have already checked QuorumReached; Elect itself does not
// re-check the gate.
func Elect(accounts core.AccountMap, rands map[string]uint64) (string, bool) {
	entries := make([]stakeEntry, 0, len(rands))
	for pk := range rands {
		acc := accounts.Peek(pk)
		if acc == nil {
			continue
		}
		entries = append(entries, stakeEntry{pkHex: pk, stake: acc.Stake})
	}
	if len(entries) == 0 {
		return "", false
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].stake != entries[j].stake {
			return entries[i].stake < entries[j].stake
		}
		return entries[i].pkHex < entries[j].pkHex
	})

	total := new(big.Int)
	randSum := new(big.Int)
	for _, e := range entries {
		total.Add(total, big.NewInt(e.stake))
		randSum.Add(randSum, new(big.Int).SetUint64(rands[e.pkHex]))
	}
	if total.Sign() <= 0 {
		return "", false
	}

	remainder := new(big.Int).Mod(randSum, total)

	cumulative := new(big.Int)
	for _, e := range entries {
		cumulative.Add(cumulative, big.NewInt(e.stake))
		if cumulative.Cmp(remainder) > 0 {
			return e.pkHex, true
		}
	}
	// Unreachable when total > 0, since cumulative reaches total on the
	// last entry and remainder < total.
	return entries[len(entries)-1].pkHex, true
}
