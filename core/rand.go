package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftchain/driftchain/crypto"
)

// ValidatorRand is one validator's committed random contribution toward
// the election for the block that will extend PrevBlockHashHex.
type ValidatorRand struct {
	ValidatorPKHex   string  `json:"validator_pk_hex"`
	PrevBlockHashHex string  `json:"prev_block_hash_hex"`
	Timestamp        float64 `json:"timestamp"`
	Rand             uint64  `json:"rand"`
	Signature        *string `json:"signature,omitempty"`
}

type randPresigned struct {
	ValidatorPKHex   string  `json:"validator_pk_hex"`
	PrevBlockHashHex string  `json:"prev_block_hash_hex"`
	Timestamp        float64 `json:"timestamp"`
	Rand             uint64  `json:"rand"`
}

func (r *ValidatorRand) presigned() randPresigned {
	return randPresigned{
		ValidatorPKHex:   r.ValidatorPKHex,
		PrevBlockHashHex: r.PrevBlockHashHex,
		Timestamp:        r.Timestamp,
		Rand:             r.Rand,
	}
}

// Hash returns the deterministic SHA-256 hash of the presigned projection.
func (r *ValidatorRand) Hash() string {
	data, err := json.Marshal(r.presigned())
	if err != nil {
		return ""
	}
	return crypto.Hash(data)
}

// Sign signs the rand's presigned projection with the validator's key.
func (r *ValidatorRand) Sign(priv crypto.PrivateKey) {
	sig := crypto.Sign(priv, []byte(r.Hash()))
	r.Signature = &sig
}

// Verify checks the signature against ValidatorPKHex.
func (r *ValidatorRand) Verify() error {
	if r.Signature == nil {
		return errors.New("missing signature")
	}
	pub, err := crypto.PubKeyFromHex(r.ValidatorPKHex)
	if err != nil {
		return fmt.Errorf("invalid validator_pk_hex: %w", err)
	}
	return crypto.Verify(pub, []byte(r.Hash()), *r.Signature)
}

// Key identifies this rand for gossip dedup: one submission per
// (parent block, validator) pair.
func (r *ValidatorRand) Key() string {
	return r.PrevBlockHashHex + ":" + r.ValidatorPKHex
}
