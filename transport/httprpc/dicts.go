package httprpc

import "github.com/driftchain/driftchain/core"

// transactionDict is the wire shape from the external interface's
// TransactionDict table.
type transactionDict struct {
	SourcePublicKeyHex       string         `json:"source_public_key_hex"`
	TransactionType          core.TxType    `json:"transaction_type"`
	ContentType              *int           `json:"content_type,omitempty"`
	ContentHashHex           *string        `json:"content_hash_hex,omitempty"`
	TxFee                    *int64         `json:"tx_fee,omitempty"`
	TargetTransactionHashHex *string        `json:"target_transaction_hash_hex,omitempty"`
	TargetPublicKeyHex       *string        `json:"target_public_key_hex,omitempty"`
	TxToken                  *int64         `json:"tx_token,omitempty"`
	TxObject                 map[string]any `json:"tx_object,omitempty"`
	SignatureHex             *string        `json:"signature_hex,omitempty"`
	TransactionHashHex       string         `json:"transaction_hash_hex"`
	Timestamp                float64        `json:"timestamp"`
	Origin                   string         `json:"origin"`
}

func (d *transactionDict) toTransaction() *core.Transaction {
	return &core.Transaction{
		Source: core.TransactionSource{
			SourcePKHex: d.SourcePublicKeyHex,
			TxType:      d.TransactionType,
			ContentType: d.ContentType,
			ContentHash: d.ContentHashHex,
			TxFee:       d.TxFee,
		},
		Target: core.TransactionTarget{
			TargetTxHashHex: d.TargetTransactionHashHex,
			TargetPKHex:     d.TargetPublicKeyHex,
			TxToken:         d.TxToken,
			TxObject:        d.TxObject,
		},
		Timestamp: d.Timestamp,
		TxHash:    d.TransactionHashHex,
		Signature: d.SignatureHex,
	}
}

// blockDict is the wire shape from the external interface's BlockDict
// table. transaction_hash_hex_list travels alongside
// transaction_dict_list for a quick membership check by receivers that
// only want hashes; this implementation rebuilds Txs from the full dict
// list.
type blockDict struct {
	PreviousBlockHashHex   *string           `json:"previous_block_hash_hex,omitempty"`
	TransactionHashHexList []string          `json:"transaction_hash_hex_list"`
	ValidatorPublicKeyHex  string            `json:"validator_public_key_hex"`
	Timestamp              float64           `json:"timestamp"`
	SignatureHex           *string           `json:"signature_hex,omitempty"`
	BlockHashHex           string            `json:"block_hash_hex"`
	TransactionDictList    []transactionDict `json:"transaction_dict_list"`
	Origin                 string            `json:"origin"`
}

func (d *blockDict) toBlock() *core.Block {
	txs := make([]*core.Transaction, len(d.TransactionDictList))
	for i := range d.TransactionDictList {
		txs[i] = d.TransactionDictList[i].toTransaction()
	}
	return &core.Block{
		PrevHashHex:    d.PreviousBlockHashHex,
		Txs:            txs,
		ValidatorPKHex: d.ValidatorPublicKeyHex,
		Timestamp:      d.Timestamp,
		BlockHash:      d.BlockHashHex,
		Signature:      d.SignatureHex,
	}
}

func blockDicts(blocks ...*core.Block) []blockDict {
	out := make([]blockDict, len(blocks))
	for i, b := range blocks {
		txs := make([]transactionDict, len(b.Txs))
		hashes := make([]string, len(b.Txs))
		for j, tx := range b.Txs {
			txs[j] = txDict(tx)
			hashes[j] = tx.TxHash
		}
		out[i] = blockDict{
			PreviousBlockHashHex:   b.PrevHashHex,
			TransactionHashHexList: hashes,
			ValidatorPublicKeyHex:  b.ValidatorPKHex,
			Timestamp:              b.Timestamp,
			SignatureHex:           b.Signature,
			BlockHashHex:           b.BlockHash,
			TransactionDictList:    txs,
		}
	}
	return out
}

func blockListDicts(blocks []*core.Block) []blockDict {
	return blockDicts(blocks...)
}

func txDict(tx *core.Transaction) transactionDict {
	return transactionDict{
		SourcePublicKeyHex:       tx.Source.SourcePKHex,
		TransactionType:          tx.Source.TxType,
		ContentType:              tx.Source.ContentType,
		ContentHashHex:           tx.Source.ContentHash,
		TxFee:                    tx.Source.TxFee,
		TargetTransactionHashHex: tx.Target.TargetTxHashHex,
		TargetPublicKeyHex:       tx.Target.TargetPKHex,
		TxToken:                  tx.Target.TxToken,
		TxObject:                 tx.Target.TxObject,
		SignatureHex:             tx.Signature,
		TransactionHashHex:       tx.TxHash,
		Timestamp:                tx.Timestamp,
	}
}

// validatorRandDict is the wire shape from the external interface's
// ValidatorRandDict table.
type validatorRandDict struct {
	ValidatorPublicKeyHex string  `json:"validator_public_key_hex"`
	PreviousBlockHashHex  string  `json:"previous_block_hash_hex"`
	Timestamp             float64 `json:"timestamp"`
	Rand                  uint64  `json:"rand"`
	SignatureHex          *string `json:"signature_hex,omitempty"`
}

func (d *validatorRandDict) toValidatorRand() *core.ValidatorRand {
	return &core.ValidatorRand{
		ValidatorPKHex:   d.ValidatorPublicKeyHex,
		PrevBlockHashHex: d.PreviousBlockHashHex,
		Timestamp:        d.Timestamp,
		Rand:             d.Rand,
		Signature:        d.SignatureHex,
	}
}
