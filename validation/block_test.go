package validation_test

import (
	"testing"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/validation"
)

func TestBlockRejectsUnsignedOrTamperedSignature(t *testing.T) {
	priv, pk := mustWallet(t)
	block := core.NewBlock(nil, pk, 1000, nil)
	block.Sign(priv)
	block.Timestamp = 9999

	err := validation.Block(block, core.NewAccountMap(), nil, nil, validation.Params{}, 10000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.BlockSignatureBad {
		t.Fatalf("got (%v, %v), want BlockSignatureBad", kind, ok)
	}
}

func TestBlockAcceptsGenesisWithNilHead(t *testing.T) {
	priv, pk := mustWallet(t)
	block := core.NewBlock(nil, pk, 1000, nil)
	block.Sign(priv)

	if err := validation.Block(block, core.NewAccountMap(), nil, nil, validation.Params{}, 2000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlockRejectsNonGenesisWhenHeadIsNil(t *testing.T) {
	priv, pk := mustWallet(t)
	parent := "some-parent-hash"
	block := core.NewBlock(&parent, pk, 1000, nil)
	block.Sign(priv)

	err := validation.Block(block, core.NewAccountMap(), nil, nil, validation.Params{}, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.NotHead {
		t.Fatalf("got (%v, %v), want NotHead", kind, ok)
	}
}

func TestBlockRejectsStaleParent(t *testing.T) {
	priv, pk := mustWallet(t)
	stale := "stale-hash"
	block := core.NewBlock(&stale, pk, 1000, nil)
	block.Sign(priv)

	head := "current-head-hash"
	err := validation.Block(block, core.NewAccountMap(), nil, &head, validation.Params{}, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.NotHead {
		t.Fatalf("got (%v, %v), want NotHead", kind, ok)
	}
}

func TestBlockRejectsValidatorMismatch(t *testing.T) {
	priv, pk := mustWallet(t)
	block := core.NewBlock(nil, pk, 1000, nil)
	block.Sign(priv)

	otherValidator := "someone-else"
	err := validation.Block(block, core.NewAccountMap(), &otherValidator, nil, validation.Params{}, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.ValidatorMismatch {
		t.Fatalf("got (%v, %v), want ValidatorMismatch", kind, ok)
	}
}

func TestBlockPropagatesTransactionValidationError(t *testing.T) {
	priv, pk := mustWallet(t)
	txPriv, txPK := mustWallet(t)
	token := int64(500)
	tx := signTx(txPriv, &core.Transaction{
		Source:    core.TransactionSource{SourcePKHex: txPK, TxType: core.TxStake},
		Target:    core.TransactionTarget{TxToken: &token},
		Timestamp: 500,
	})

	block := core.NewBlock(nil, pk, 1000, []*core.Transaction{tx})
	block.Sign(priv)

	accounts := core.NewAccountMap()
	accounts.Get(txPK).Balance = 10

	err := validation.Block(block, accounts, nil, nil, validation.Params{}, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.StakeInvalid {
		t.Fatalf("got (%v, %v), want StakeInvalid", kind, ok)
	}
}
