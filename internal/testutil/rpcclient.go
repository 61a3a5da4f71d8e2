package testutil

import (
	"context"
	"fmt"
	"sync"
)

// call records one outbound request observed by FakeRPCClient.
type call struct {
	Peer string
	Path string
	Body any
}

// FakeRPCClient is an in-memory gossip.RPCClient: responses are
// pre-scripted per peer+path, and every call made against it is
// recorded for assertions. Peers listed in Unreachable fail every
// call with an error, the same shape a dead HTTP peer produces.
type FakeRPCClient struct {
	mu            sync.Mutex
	postResponses map[string]map[string]map[string]any
	getResponses  map[string]map[string]any
	unreachable   map[string]bool
	calls         []call
}

// NewFakeRPCClient returns an empty FakeRPCClient.
func NewFakeRPCClient() *FakeRPCClient {
	return &FakeRPCClient{
		postResponses: make(map[string]map[string]map[string]any),
		getResponses:  make(map[string]map[string]any),
		unreachable:   make(map[string]bool),
	}
}

// StubPost registers the response a Post to peer+path will return.
func (c *FakeRPCClient) StubPost(peer, path string, resp map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.postResponses[peer] == nil {
		c.postResponses[peer] = make(map[string]map[string]any)
	}
	c.postResponses[peer][path] = resp
}

// StubGet registers the response a Get to peer+path will return.
func (c *FakeRPCClient) StubGet(peer, path string, resp any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getResponses[peer] == nil {
		c.getResponses[peer] = make(map[string]any)
	}
	c.getResponses[peer][path] = resp
}

// SetUnreachable makes every call against peer fail.
func (c *FakeRPCClient) SetUnreachable(peer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unreachable[peer] = true
}

func (c *FakeRPCClient) Post(ctx context.Context, peer, path string, body any) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{Peer: peer, Path: path, Body: body})
	if c.unreachable[peer] {
		return nil, fmt.Errorf("testutil: peer %s unreachable", peer)
	}
	byPath, ok := c.postResponses[peer]
	if !ok {
		return nil, fmt.Errorf("testutil: no stubbed post response for %s%s", peer, path)
	}
	resp, ok := byPath[path]
	if !ok {
		return nil, fmt.Errorf("testutil: no stubbed post response for %s%s", peer, path)
	}
	return resp, nil
}

func (c *FakeRPCClient) Get(ctx context.Context, peer, path string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{Peer: peer, Path: path})
	if c.unreachable[peer] {
		return nil, fmt.Errorf("testutil: peer %s unreachable", peer)
	}
	byPath, ok := c.getResponses[peer]
	if !ok {
		return nil, fmt.Errorf("testutil: no stubbed get response for %s%s", peer, path)
	}
	resp, ok := byPath[path]
	if !ok {
		return nil, fmt.Errorf("testutil: no stubbed get response for %s%s", peer, path)
	}
	return resp, nil
}

// Calls returns every call observed so far, in order.
func (c *FakeRPCClient) Calls() []call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]call, len(c.calls))
	copy(out, c.calls)
	return out
}
