package gossip

// BroadcastSet tracks, per payload hash, which peer addresses have
// already been sent (or are committed to be sent) that payload. Callers
// must call Commit for a peer *before* issuing the outbound send, so a
// duplicate arrival of the same payload during an in-flight send still
// observes the peer as already covered.
type BroadcastSet struct {
	sent map[string]map[string]bool
}

// NewBroadcastSet returns an empty dedup set.
func NewBroadcastSet() *BroadcastSet {
	return &BroadcastSet{sent: make(map[string]map[string]bool)}
}

// Commit records that peer has been (or is about to be) sent the payload
// identified by hash. Returns false if peer was already committed for
// this hash, meaning the caller must not send again.
func (b *BroadcastSet) Commit(hash, peer string) bool {
	set, ok := b.sent[hash]
	if !ok {
		set = make(map[string]bool)
		b.sent[hash] = set
	}
	if set[peer] {
		return false
	}
	set[peer] = true
	return true
}

// Evict forgets a payload's broadcast record entirely, called once the
// payload (a transaction included in an accepted block) no longer needs
// dedup tracking.
func (b *BroadcastSet) Evict(hash string) {
	delete(b.sent, hash)
}
