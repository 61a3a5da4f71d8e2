package core

import "errors"

// maxMempoolSize bounds pending transactions so an unresponsive validator
// set cannot grow the pool without limit.
const maxMempoolSize = 10_000

// ErrMempoolFull is returned by Mempool.Add when the pool is at capacity.
var ErrMempoolFull = errors.New("mempool full")

// Mempool holds pending transactions. It is not internally synchronized —
// per the concurrency model, the node's single coarse mutex guards it, the
// same way it guards the chain and account map.
type Mempool struct {
	txs map[string]*Transaction
	ord []string // insertion order, for deterministic iteration
}

// NewMempool creates an empty mempool.
func NewMempool() *Mempool {
	return &Mempool{txs: make(map[string]*Transaction)}
}

// Has reports whether a transaction with this hash is already pending.
func (m *Mempool) Has(txHash string) bool {
	_, ok := m.txs[txHash]
	return ok
}

// Add inserts tx, assumed already validated by the caller. Returns
// ErrMempoolFull if the pool is at capacity; the caller should treat this
// the same as any other rejection (do not evict, do not amplify).
func (m *Mempool) Add(tx *Transaction) error {
	if len(m.txs) >= maxMempoolSize {
		return ErrMempoolFull
	}
	m.txs[tx.TxHash] = tx
	m.ord = append(m.ord, tx.TxHash)
	return nil
}

// Get returns a pending transaction by hash.
func (m *Mempool) Get(txHash string) (*Transaction, bool) {
	tx, ok := m.txs[txHash]
	return tx, ok
}

// All returns every pending transaction in insertion order.
func (m *Mempool) All() []*Transaction {
	result := make([]*Transaction, 0, len(m.ord))
	for _, h := range m.ord {
		if tx, ok := m.txs[h]; ok {
			result = append(result, tx)
		}
	}
	return result
}

// Remove evicts transactions by hash (called after the block containing
// them is accepted).
func (m *Mempool) Remove(hashes []string) {
	removed := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		delete(m.txs, h)
		removed[h] = true
	}
	filtered := m.ord[:0]
	for _, h := range m.ord {
		if !removed[h] {
			filtered = append(filtered, h)
		}
	}
	m.ord = filtered
}

// Size returns the number of pending transactions.
func (m *Mempool) Size() int {
	return len(m.txs)
}
