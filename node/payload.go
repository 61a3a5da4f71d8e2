package node

import "github.com/driftchain/driftchain/core"

// txPayload builds the TransactionDict ∪ {origin} body for
// POST /validation/transaction.
func txPayload(tx *core.Transaction, origin string) map[string]any {
	return map[string]any{
		"source_public_key_hex":       tx.Source.SourcePKHex,
		"transaction_type":            tx.Source.TxType,
		"content_type":                tx.Source.ContentType,
		"content_hash_hex":            tx.Source.ContentHash,
		"tx_fee":                      tx.Source.TxFee,
		"target_transaction_hash_hex": tx.Target.TargetTxHashHex,
		"target_public_key_hex":       tx.Target.TargetPKHex,
		"tx_token":                    tx.Target.TxToken,
		"tx_object":                   tx.Target.TxObject,
		"signature_hex":               tx.Signature,
		"transaction_hash_hex":        tx.TxHash,
		"timestamp":                   tx.Timestamp,
		"origin":                      origin,
	}
}

// blockPayload builds the BlockDict ∪ {origin} body for
// POST /validation/block.
func blockPayload(block *core.Block, origin string) map[string]any {
	hashes := make([]string, len(block.Txs))
	txDicts := make([]map[string]any, len(block.Txs))
	for i, tx := range block.Txs {
		hashes[i] = tx.TxHash
		txDicts[i] = txPayload(tx, origin)
	}
	return map[string]any{
		"previous_block_hash_hex":   block.PrevHashHex,
		"transaction_hash_hex_list": hashes,
		"validator_public_key_hex":  block.ValidatorPKHex,
		"timestamp":                 block.Timestamp,
		"signature_hex":             block.Signature,
		"block_hash_hex":            block.BlockHash,
		"transaction_dict_list":     txDicts,
		"origin":                    origin,
	}
}

// randPayload builds the ValidatorRandDict body for POST /validator/rand.
// The route carries no origin field in the spec's table, but the node
// still threads origin through AcceptRand for dedup purposes locally.
func randPayload(vr *core.ValidatorRand) map[string]any {
	return map[string]any{
		"validator_public_key_hex": vr.ValidatorPKHex,
		"previous_block_hash_hex":  vr.PrevBlockHashHex,
		"timestamp":                vr.Timestamp,
		"rand":                     vr.Rand,
		"signature_hex":            vr.Signature,
	}
}
