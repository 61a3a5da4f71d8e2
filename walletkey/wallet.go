package walletkey

import (
	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/crypto"
)

// Wallet holds a key pair for signing transactions, rands, and blocks.
type Wallet struct {
	priv crypto.PrivateKey
	pub  crypto.PublicKey
}

// New creates a Wallet from an existing private key.
func New(priv crypto.PrivateKey) *Wallet {
	return &Wallet{priv: priv, pub: priv.Public()}
}

// Generate creates a Wallet with a freshly generated key pair.
func Generate() (*Wallet, error) {
	priv, _, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return New(priv), nil
}

// PrivKey returns the raw private key (handle with care).
func (w *Wallet) PrivKey() crypto.PrivateKey {
	return w.priv
}

// PubKeyHex returns the hex-encoded ed25519 public key, used as
// source_pk_hex / validator_pk_hex throughout the wire formats.
func (w *Wallet) PubKeyHex() string {
	return w.pub.Hex()
}

// NewTransaction builds and signs a transaction of typ with the given
// target and timestamp.
func (w *Wallet) NewTransaction(typ core.TxType, target core.TransactionTarget, timestamp float64) *core.Transaction {
	tx := &core.Transaction{
		Source:    core.TransactionSource{SourcePKHex: w.pub.Hex(), TxType: typ},
		Target:    target,
		Timestamp: timestamp,
	}
	tx.Sign(w.priv)
	return tx
}

// Transfer builds and signs a TRANSFER transaction.
func (w *Wallet) Transfer(targetPKHex string, token int64, timestamp float64) *core.Transaction {
	return w.NewTransaction(core.TxTransfer, core.TransactionTarget{
		TargetPKHex: &targetPKHex,
		TxToken:     &token,
	}, timestamp)
}

// Stake builds and signs a STAKE transaction. token may be negative to
// un-stake.
func (w *Wallet) Stake(token int64, timestamp float64) *core.Transaction {
	return w.NewTransaction(core.TxStake, core.TransactionTarget{TxToken: &token}, timestamp)
}
