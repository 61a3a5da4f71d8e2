package httprpc

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/crypto"
	"github.com/driftchain/driftchain/internal/testutil"
	"github.com/driftchain/driftchain/node"
	"github.com/driftchain/driftchain/validation"
)

func startTestServer(t *testing.T) (*Server, *node.Node, *Client) {
	t.Helper()
	n := node.New(node.Config{
		SelfAddr: "http://test",
		Params:   validation.Params{ValidationReward: 5, MaxTxPerBlock: 10, MinValidatorCnt: 1},
		Client:   testutil.NewFakeRPCClient(),
		Clock:    testutil.NewManualClock(1000),
	})
	srv := NewServer("127.0.0.1:0", n, func() float64 { return 2000 })
	if err := srv.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })
	return srv, n, NewClient(2 * time.Second)
}

func TestServerHandleNodeAcceptsPeer(t *testing.T) {
	srv, n, client := startTestServer(t)
	addr := fmt.Sprintf("http://%s", srv.Addr().String())

	_, err := client.Post(context.Background(), addr, "/node", map[string]string{"address": "peer-x"})
	if err != nil {
		t.Fatalf("post /node: %v", err)
	}
	found := false
	for _, p := range n.KnownPeers() {
		if p == "peer-x" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected peer-x to be admitted via /node")
	}
}

func TestServerHandleKnownNodesAndBlockchain(t *testing.T) {
	srv, _, client := startTestServer(t)
	addr := fmt.Sprintf("http://%s", srv.Addr().String())

	if _, err := client.Get(context.Background(), addr, "/known_nodes"); err != nil {
		t.Fatalf("get /known_nodes: %v", err)
	}
	if _, err := client.Get(context.Background(), addr, "/blockchain"); err != nil {
		t.Fatalf("get /blockchain: %v", err)
	}
}

func TestServerHandleValidateTransactionAccepts(t *testing.T) {
	srv, _, client := startTestServer(t)
	addr := fmt.Sprintf("http://%s", srv.Addr().String())

	priv, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	tx := &core.Transaction{
		Source:    core.TransactionSource{SourcePKHex: pub.Hex(), TxType: core.TxPost},
		Timestamp: 1000,
	}
	tx.Sign(priv)

	body := txDict(tx)
	body.Origin = "peer-y"

	if _, err := client.Post(context.Background(), addr, "/validation/transaction", body); err != nil {
		t.Fatalf("post /validation/transaction: %v", err)
	}
}

func TestServerHandleValidateTransactionRejectsBadSignature(t *testing.T) {
	srv, _, client := startTestServer(t)
	addr := fmt.Sprintf("http://%s", srv.Addr().String())

	priv, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	tx := &core.Transaction{
		Source:    core.TransactionSource{SourcePKHex: pub.Hex(), TxType: core.TxPost},
		Timestamp: 1000,
	}
	tx.Sign(priv)
	tx.TxHash = "tampered"

	body := txDict(tx)

	_, err = client.Post(context.Background(), addr, "/validation/transaction", body)
	if err == nil {
		t.Fatal("expected a non-2xx response for a tampered transaction")
	}
}
