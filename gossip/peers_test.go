package gossip_test

import (
	"testing"

	"github.com/driftchain/driftchain/gossip"
)

func TestPeersAddAndRemove(t *testing.T) {
	peers := gossip.NewPeers()
	peers.Add("a")
	peers.Add("b")
	peers.Add("a")

	if peers.Len() != 2 {
		t.Fatalf("len = %d, want 2", peers.Len())
	}
	if !peers.Has("a") || !peers.Has("b") {
		t.Fatal("expected both peers to be known")
	}

	peers.Remove("a")
	if peers.Has("a") {
		t.Fatal("expected a to be removed")
	}
	if peers.Len() != 1 {
		t.Fatalf("len = %d, want 1", peers.Len())
	}
}

func TestPeersListReturnsEveryKnownAddress(t *testing.T) {
	peers := gossip.NewPeers()
	peers.Add("x")
	peers.Add("y")

	list := peers.List()
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}
