package validation_test

import (
	"testing"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/validation"
)

func TestAllReplaysChainAndCreditsRewards(t *testing.T) {
	priv, pk := mustWallet(t)
	chain := core.NewChain()

	genesis := core.NewBlock(nil, pk, 1000, nil)
	genesis.Sign(priv)
	if err := chain.AddBlock(genesis); err != nil {
		t.Fatalf("add genesis: %v", err)
	}

	next := core.NewBlock(&genesis.BlockHash, pk, 1001, nil)
	next.Sign(priv)
	if err := chain.AddBlock(next); err != nil {
		t.Fatalf("add next: %v", err)
	}

	accounts, err := validation.All(chain, validation.Params{ValidationReward: 5}, 2000)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if accounts.Get(pk).Balance != 10 {
		t.Fatalf("balance = %d, want 10 (two blocks x reward 5)", accounts.Get(pk).Balance)
	}
}

func TestAllStopsAtFirstInvalidBlock(t *testing.T) {
	priv, pk := mustWallet(t)
	chain := core.NewChain()

	genesis := core.NewBlock(nil, pk, 1000, nil)
	genesis.Sign(priv)
	chain.AddBlock(genesis)

	next := core.NewBlock(&genesis.BlockHash, pk, 1001, nil)
	next.Sign(priv)
	next.Timestamp = 999999 // mutate after signing to invalidate block_hash/signature
	chain.AddBlock(next)

	_, err := validation.All(chain, validation.Params{ValidationReward: 5}, 2000)
	if err == nil {
		t.Fatal("expected replay to fail on the tampered second block")
	}
}
