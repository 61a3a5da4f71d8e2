package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftchain/driftchain/crypto"
)

// Block is a collection of transactions proposed by one validator for a
// single consensus round. PrevBlock is set by the Chain arena when the
// parent is known locally; PrevHashHex is always present except on the
// genesis block, and is what travels on the wire and is hashed/signed.
type Block struct {
	PrevBlock   *Block         `json:"-"`
	PrevHashHex *string        `json:"prev_hash_hex,omitempty"`
	Txs         []*Transaction `json:"txs"`
	ValidatorPKHex string      `json:"validator_pk_hex"`
	Timestamp   float64        `json:"timestamp"`
	BlockHash   string         `json:"block_hash"`
	Signature   *string        `json:"signature,omitempty"`
}

// blockPresigned is the canonical projection that is both hashed and
// signed. It carries each transaction's hash rather than its full body —
// per spec, the malleability surface this opens is closed by tx_hash
// itself already covering the transaction's full signed content.
type blockPresigned struct {
	PrevHashHex    *string  `json:"prev_hash_hex,omitempty"`
	TxHashes       []string `json:"tx_hashes"`
	ValidatorPKHex string   `json:"validator_pk_hex"`
	Timestamp      float64  `json:"timestamp"`
}

func (b *Block) presigned() blockPresigned {
	hashes := make([]string, len(b.Txs))
	for i, tx := range b.Txs {
		hashes[i] = tx.TxHash
	}
	return blockPresigned{
		PrevHashHex:    b.PrevHashHex,
		TxHashes:       hashes,
		ValidatorPKHex: b.ValidatorPKHex,
		Timestamp:      b.Timestamp,
	}
}

// Hash returns the deterministic SHA-256 hash of the presigned projection.
func (b *Block) Hash() string {
	data, err := json.Marshal(b.presigned())
	if err != nil {
		return ""
	}
	return crypto.Hash(data)
}

// Sign sets BlockHash and signs the block with the proposer's private key.
func (b *Block) Sign(priv crypto.PrivateKey) {
	b.BlockHash = b.Hash()
	sig := crypto.Sign(priv, []byte(b.BlockHash))
	b.Signature = &sig
}

// Verify checks block_hash consistency and the signature against
// validator_pk_hex.
func (b *Block) Verify() error {
	if computed := b.Hash(); b.BlockHash != computed {
		return fmt.Errorf("block_hash mismatch: stored %s computed %s", b.BlockHash, computed)
	}
	if b.Signature == nil {
		return errors.New("missing signature")
	}
	pub, err := crypto.PubKeyFromHex(b.ValidatorPKHex)
	if err != nil {
		return fmt.Errorf("invalid validator_pk_hex: %w", err)
	}
	return crypto.Verify(pub, []byte(b.BlockHash), *b.Signature)
}

// IsInitial reports whether b is the genesis block — the block with no
// parent identified either by pointer or by hash.
func (b *Block) IsInitial() bool {
	return b.PrevBlock == nil && b.PrevHashHex == nil
}

// Equal compares blocks by (block_hash, signature) per the data model.
func (b *Block) Equal(other *Block) bool {
	if other == nil {
		return false
	}
	if b.BlockHash != other.BlockHash {
		return false
	}
	switch {
	case b.Signature == nil && other.Signature == nil:
		return true
	case b.Signature == nil || other.Signature == nil:
		return false
	default:
		return *b.Signature == *other.Signature
	}
}

// NewBlock creates an unsigned block extending prevHashHex (nil for
// genesis).
func NewBlock(prevHashHex *string, validatorPKHex string, timestamp float64, txs []*Transaction) *Block {
	return &Block{
		PrevHashHex:    prevHashHex,
		Txs:            txs,
		ValidatorPKHex: validatorPKHex,
		Timestamp:      timestamp,
	}
}
