package gossip

import "github.com/driftchain/driftchain/core"

// wireTransactionDict and wireBlockDict mirror the external interface's
// TransactionDict/BlockDict field names (spec §6). The transport layer
// produces exactly this JSON shape for GET /blockchain; gossip decodes it
// back into core types without depending on the transport package.
type wireTransactionDict struct {
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
}

func (d *wireTransactionDict) toTransaction() *core.Transaction {
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

type wireBlockDict struct {
	PreviousBlockHashHex  *string               `json:"previous_block_hash_hex,omitempty"`
	ValidatorPublicKeyHex string                `json:"validator_public_key_hex"`
	Timestamp             float64               `json:"timestamp"`
	SignatureHex          *string               `json:"signature_hex,omitempty"`
	BlockHashHex          string                `json:"block_hash_hex"`
	TransactionDictList   []wireTransactionDict `json:"transaction_dict_list"`
}

func (d *wireBlockDict) toBlock() *core.Block {
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
