package gossip

import "context"

// RPCClient is the outbound transport the core depends on. The HTTP
// implementation lives outside this package (transport/httprpc); the
// core only needs post-json/get-json semantics against a peer address.
type RPCClient interface {
	// Post sends body as JSON to path on peer and returns the decoded
	// JSON response, or an error on connect failure, timeout, or non-2xx
	// status.
	Post(ctx context.Context, peer, path string, body any) (map[string]any, error)
	// Get issues a GET to path on peer and returns the decoded JSON
	// response.
	Get(ctx context.Context, peer, path string) (any, error)
}
