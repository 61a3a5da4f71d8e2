package gossip

import (
	"context"
	"encoding/json"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/validation"
)

// Bootstrap runs the three-phase join sequence: pull known peers from
// every seed (unioning responses, dropping self and unreachable seeds),
// announce self to the resulting peer set, then pull each peer's chain
// and keep the longest one that also replays cleanly under validateAll.
func Bootstrap(
	ctx context.Context,
	client RPCClient,
	peers *Peers,
	selfAddr string,
	seedPeers []string,
	params validation.Params,
	now float64,
) (*core.Chain, core.AccountMap, error) {
	for _, addr := range seedPeers {
		peers.Add(addr)
	}
	peers.Remove(selfAddr)

	pullKnownNodes(ctx, client, peers, selfAddr)
	announceSelf(ctx, client, peers, selfAddr)
	return pullLongestChain(ctx, client, peers, selfAddr, params, now)
}

func pullKnownNodes(ctx context.Context, client RPCClient, peers *Peers, selfAddr string) {
	for _, addr := range peers.List() {
		if addr == selfAddr {
			continue
		}
		resp, err := client.Get(ctx, addr, "/known_nodes")
		if err != nil {
			peers.Remove(addr)
			continue
		}
		list, ok := resp.([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if s, ok := item.(string); ok && s != selfAddr {
				peers.Add(s)
			}
		}
	}
	peers.Remove(selfAddr)
}

func announceSelf(ctx context.Context, client RPCClient, peers *Peers, selfAddr string) {
	for _, addr := range peers.List() {
		if addr == selfAddr {
			continue
		}
		_, err := client.Post(ctx, addr, "/node", map[string]string{"address": selfAddr})
		if err != nil {
			peers.Remove(addr)
		}
	}
}

func pullLongestChain(
	ctx context.Context,
	client RPCClient,
	peers *Peers,
	selfAddr string,
	params validation.Params,
	now float64,
) (*core.Chain, core.AccountMap, error) {
	var bestChain *core.Chain
	var bestAccounts core.AccountMap
	bestLen := -1

	for _, addr := range peers.List() {
		if addr == selfAddr {
			continue
		}
		resp, err := client.Get(ctx, addr, "/blockchain")
		if err != nil {
			peers.Remove(addr)
			continue
		}
		chain, ok := decodeChain(resp)
		if !ok || chain.Length() <= bestLen {
			continue
		}
		accounts, err := validation.All(chain, params, now)
		if err != nil {
			continue
		}
		bestChain, bestAccounts, bestLen = chain, accounts, chain.Length()
	}

	if bestChain == nil {
		return core.NewChain(), core.NewAccountMap(), nil
	}
	return bestChain, bestAccounts, nil
}

func decodeChain(resp any) (*core.Chain, bool) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, false
	}
	var dicts []wireBlockDict
	if err := json.Unmarshal(raw, &dicts); err != nil {
		return nil, false
	}
	blocks := make([]*core.Block, len(dicts))
	for i := range dicts {
		blocks[i] = dicts[i].toBlock()
	}
	chain, err := core.ChainFromList(blocks)
	if err != nil {
		return nil, false
	}
	return chain, true
}
