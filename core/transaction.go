// Package core holds the driftchain data model: transactions, blocks,
// validator-rand entries, accounts, the chain arena, and the mempool. Every
// hashable/signable value here defines a "presigned" projection with a
// fixed field order (enforced by Go's encoding/json, which always emits
// struct fields in declaration order); hash and signature are both computed
// over that same projection, so the same canonicalizer serves both.
package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftchain/driftchain/crypto"
)

// TxType identifies the kind of operation a transaction performs.
type TxType string

const (
	TxPost          TxType = "POST"
	TxEditPost      TxType = "EDIT_POST"
	TxDeletePost    TxType = "DELETE_POST"
	TxComment       TxType = "COMMENT"
	TxEditComment   TxType = "EDIT_COMMENT"
	TxDeleteComment TxType = "DELETE_COMMENT"
	TxReply         TxType = "REPLY"
	TxEditReply     TxType = "EDIT_REPLY"
	TxDeleteReply   TxType = "DELETE_REPLY"
	TxShare         TxType = "SHARE"
	TxReactLike     TxType = "REACT_LIKE"
	TxReport        TxType = "REPORT"
	TxTip           TxType = "TIP"
	TxFollow        TxType = "FOLLOW"
	TxUnfollow      TxType = "UNFOLLOW"
	TxTransfer      TxType = "TRANSFER"
	TxStake         TxType = "STAKE"
	TxICO           TxType = "ICO"
)

// TransactionSource identifies who issued a transaction and, for content
// transactions, what content it carries.
type TransactionSource struct {
	SourcePKHex string  `json:"source_pk_hex"`
	TxType      TxType  `json:"tx_type"`
	ContentType *int    `json:"content_type,omitempty"`
	ContentHash *string `json:"content_hash,omitempty"`
	TxFee       *int64  `json:"tx_fee,omitempty"`
}

// TransactionTarget carries the fields whose shape is dictated by TxType:
// a referenced transaction (edits/deletes), a recipient account (transfer,
// tip), a token amount (stake, transfer, tip, ico), or a free-form object
// (social payload bodies).
type TransactionTarget struct {
	TargetTxHashHex *string        `json:"target_tx_hash_hex,omitempty"`
	TargetPKHex     *string        `json:"target_pk_hex,omitempty"`
	TxToken         *int64         `json:"tx_token,omitempty"`
	TxObject        map[string]any `json:"tx_object,omitempty"`
}

// Transaction is the atomic unit of work on the chain. Equality is defined
// by (TxHash, Signature) per the data model.
type Transaction struct {
	Source    TransactionSource `json:"source"`
	Target    TransactionTarget `json:"target"`
	Timestamp float64           `json:"timestamp"`
	TxHash    string            `json:"tx_hash"`
	Signature *string           `json:"signature,omitempty"`
}

// txPresigned is the canonical projection that is both hashed and signed.
type txPresigned struct {
	Source    TransactionSource `json:"source"`
	Target    TransactionTarget `json:"target"`
	Timestamp float64           `json:"timestamp"`
}

func (tx *Transaction) presigned() txPresigned {
	return txPresigned{Source: tx.Source, Target: tx.Target, Timestamp: tx.Timestamp}
}

// Hash returns the deterministic SHA-256 hash of the presigned projection.
// Returns an empty string if marshalling fails, which cannot happen for a
// Transaction built from this package's own types.
func (tx *Transaction) Hash() string {
	data, err := json.Marshal(tx.presigned())
	if err != nil {
		return ""
	}
	return crypto.Hash(data)
}

// Sign computes TxHash and the signature over the presigned projection.
func (tx *Transaction) Sign(priv crypto.PrivateKey) {
	tx.TxHash = tx.Hash()
	sig := crypto.Sign(priv, []byte(tx.TxHash))
	tx.Signature = &sig
}

// Verify checks tx_hash consistency and the signature against SourcePKHex.
func (tx *Transaction) Verify() error {
	if tx.Source.SourcePKHex == "" {
		return errors.New("missing source_pk_hex")
	}
	if computed := tx.Hash(); tx.TxHash != computed {
		return fmt.Errorf("tx_hash mismatch: stored %s computed %s", tx.TxHash, computed)
	}
	if tx.Signature == nil {
		return errors.New("missing signature")
	}
	pub, err := crypto.PubKeyFromHex(tx.Source.SourcePKHex)
	if err != nil {
		return fmt.Errorf("invalid source_pk_hex: %w", err)
	}
	return crypto.Verify(pub, []byte(tx.TxHash), *tx.Signature)
}

// Equal compares transactions by (tx_hash, signature) per the data model.
func (tx *Transaction) Equal(other *Transaction) bool {
	if other == nil {
		return false
	}
	if tx.TxHash != other.TxHash {
		return false
	}
	switch {
	case tx.Signature == nil && other.Signature == nil:
		return true
	case tx.Signature == nil || other.Signature == nil:
		return false
	default:
		return *tx.Signature == *other.Signature
	}
}
