// Package gossip implements the known-peer set, broadcast dedup sets, and
// bootstrap sequence described in the spec: peers are admitted greedily
// and pruned only on observed disconnection, and broadcast fan-out
// pre-commits its intent before sending so duplicate deliveries of the
// same payload amplify at most once per peer.
package gossip

// Peers is the known-peer address set. It grows monotonically on
// admission and shrinks only when a send to a peer fails, matching the
// "intentionally lossy" eventual-consistency note in the concurrency
// model.
type Peers struct {
	addrs map[string]bool
}

// NewPeers returns an empty peer set.
func NewPeers() *Peers {
	return &Peers{addrs: make(map[string]bool)}
}

// Add admits address, a no-op if already known.
func (p *Peers) Add(address string) {
	p.addrs[address] = true
}

// Remove drops address, called after an observed connection failure.
func (p *Peers) Remove(address string) {
	delete(p.addrs, address)
}

// Has reports whether address is currently known.
func (p *Peers) Has(address string) bool {
	return p.addrs[address]
}

// List returns every known peer address. Order is unspecified.
func (p *Peers) List() []string {
	out := make([]string, 0, len(p.addrs))
	for a := range p.addrs {
		out = append(out, a)
	}
	return out
}

// Len returns the number of known peers.
func (p *Peers) Len() int {
	return len(p.addrs)
}
