package consensus_test

import (
	"testing"

	"github.com/driftchain/driftchain/consensus"
	"github.com/driftchain/driftchain/core"
)

func TestElectMatchesReferenceWalk(t *testing.T) {
	// stakes 1,1,2,4 (pk order a<b<c<d); rands 10,20,30,5.
	// total stake = 8, rand sum = 65, remainder = 65 mod 8 = 1.
	// sorted ascending by (stake, pk): a(1),b(1),c(2),d(4).
	// cumulative: 1,2,4,8 — first entry with cumulative > 1 is b.
	accounts := core.NewAccountMap()
	accounts.Get("a").Stake = 1
	accounts.Get("b").Stake = 1
	accounts.Get("c").Stake = 2
	accounts.Get("d").Stake = 4

	rands := map[string]uint64{"a": 10, "b": 20, "c": 30, "d": 5}

	pk, ok := consensus.Elect(accounts, rands)
	if !ok {
		t.Fatal("expected an election outcome")
	}
	if pk != "b" {
		t.Fatalf("elected %q, want %q", pk, "b")
	}
}

func TestElectIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	accounts := core.NewAccountMap()
	accounts.Get("a").Stake = 3
	accounts.Get("b").Stake = 7
	rands := map[string]uint64{"a": 123, "b": 456}

	first, _ := consensus.Elect(accounts, rands)
	for i := 0; i < 10; i++ {
		got, _ := consensus.Elect(accounts, rands)
		if got != first {
			t.Fatalf("election outcome varied across calls: %q vs %q", got, first)
		}
	}
}

func TestElectIgnoresRandsFromUnknownAccounts(t *testing.T) {
	accounts := core.NewAccountMap()
	accounts.Get("a").Stake = 5
	rands := map[string]uint64{"a": 1, "ghost": 99}

	pk, ok := consensus.Elect(accounts, rands)
	if !ok || pk != "a" {
		t.Fatalf("got (%q, %v), want (%q, true)", pk, ok, "a")
	}
}

func TestElectFavorsHeavierStakeStatistically(t *testing.T) {
	accounts := core.NewAccountMap()
	accounts.Get("heavy").Stake = 90
	accounts.Get("light").Stake = 10

	heavyWins := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		rands := map[string]uint64{"heavy": uint64(i * 7919), "light": uint64(i*104729 + 13)}
		pk, ok := consensus.Elect(accounts, rands)
		if !ok {
			t.Fatalf("trial %d: expected an election outcome", i)
		}
		if pk == "heavy" {
			heavyWins++
		}
	}
	if heavyWins < trials/2 {
		t.Fatalf("heavy validator (stake 90 vs 10) won only %d/%d trials", heavyWins, trials)
	}
}

func TestQuorumReachedRequiresExactSetEquality(t *testing.T) {
	eligible := map[string]bool{"a": true, "b": true}
	rands := map[string]uint64{"a": 1}
	if consensus.QuorumReached(eligible, rands, 1) {
		t.Fatal("quorum should not be reached while a validator hasn't submitted")
	}

	rands["b"] = 2
	if !consensus.QuorumReached(eligible, rands, 2) {
		t.Fatal("quorum should be reached once the submitted set equals the eligible set")
	}
}

func TestQuorumReachedRejectsSubmissionFromOutsideEligibleSet(t *testing.T) {
	eligible := map[string]bool{"a": true}
	rands := map[string]uint64{"a": 1, "b": 2}
	if consensus.QuorumReached(eligible, rands, 1) {
		t.Fatal("quorum should require every submitter to be eligible")
	}
}
