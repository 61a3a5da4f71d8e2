package node

import (
	"context"

	"github.com/google/uuid"

	"github.com/driftchain/driftchain/gossip"
)

// amplifyTargetsLocked pre-commits every known peer other than origin
// into bcSet for hash, returning only the peers newly committed (i.e.
// not already covered by an earlier or concurrent send for this hash).
// Must be called with mu held; the returned slice is then sent outside
// the lock.
func (n *Node) amplifyTargetsLocked(bcSet *gossip.BroadcastSet, hash, origin string) []string {
	var targets []string
	for _, peer := range n.peers.List() {
		if peer == origin {
			continue
		}
		if bcSet.Commit(hash, peer) {
			targets = append(targets, peer)
		}
	}
	return targets
}

// amplify POSTs payload to path on every target peer, concurrently,
// outside the node's lock. A peer that fails to respond is dropped from
// the known-peer set; it may rejoin later via /node.
func (n *Node) amplify(ctx context.Context, targets []string, hash, path string, payload any) {
	if len(targets) == 0 {
		return
	}
	traceID := uuid.NewString()
	n.logf("trace=%s amplifying %s to %d peer(s)", traceID, hash, len(targets))

	done := make(chan string, len(targets))
	for _, peer := range targets {
		go func(peer string) {
			if _, err := n.client.Post(ctx, peer, path, payload); err != nil {
				done <- peer
				return
			}
			if n.metrics != nil {
				n.metrics.GossipSends.Inc()
			}
			done <- ""
		}(peer)
	}
	for range targets {
		if failed := <-done; failed != "" {
			n.mu.Lock()
			n.peers.Remove(failed)
			n.refreshGaugesLocked()
			n.mu.Unlock()
			n.logf("trace=%s peer %s unreachable during amplify of %s, removed", traceID, failed, hash)
		}
	}
}
