package consensus

import (
	"sort"

	"github.com/driftchain/driftchain/core"
)

// SelectTransactions picks up to maxCount pending transactions for a new
// block, ordered by the source account's stake descending, ties broken by
// transaction hash ascending.
func SelectTransactions(pending []*core.Transaction, accounts core.AccountMap, maxCount int) []*core.Transaction {
	sorted := make([]*core.Transaction, len(pending))
	copy(sorted, pending)

	stakeOf := func(tx *core.Transaction) int64 {
		if acc := accounts.Peek(tx.Source.SourcePKHex); acc != nil {
			return acc.Stake
		}
		return 0
	}

	sort.Slice(sorted, func(i, j int) bool {
		si, sj := stakeOf(sorted[i]), stakeOf(sorted[j])
		if si != sj {
			return si > sj
		}
		return sorted[i].TxHash < sorted[j].TxHash
	})

	if maxCount >= 0 && len(sorted) > maxCount {
		sorted = sorted[:maxCount]
	}
	return sorted
}
