package walletkey_test

import (
	"testing"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/walletkey"
)

func TestWalletTransferIsSignedAndVerifiable(t *testing.T) {
	w, err := walletkey.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tx := w.Transfer("target-pk-hex", 25, 1000)

	if tx.Source.SourcePKHex != w.PubKeyHex() {
		t.Fatal("transaction source does not match the wallet's public key")
	}
	if err := tx.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestWalletStakeSetsTxToken(t *testing.T) {
	w, err := walletkey.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tx := w.Stake(-10, 1000)
	if tx.Source.TxType != core.TxStake {
		t.Fatalf("tx type = %v, want STAKE", tx.Source.TxType)
	}
	if tx.Target.TxToken == nil || *tx.Target.TxToken != -10 {
		t.Fatal("expected tx_token to carry the signed stake delta")
	}
	if err := tx.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
