package crypto_test

import (
	"testing"

	"github.com/driftchain/driftchain/crypto"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	data := []byte("hello driftchain")
	sig := crypto.Sign(priv, data)
	if err := crypto.Verify(pub, data, sig); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyRejectsTamperedData(t *testing.T) {
	priv, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	sig := crypto.Sign(priv, []byte("original"))
	if err := crypto.Verify(pub, []byte("tampered"), sig); err == nil {
		t.Fatal("expected verify to fail on tampered data")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv, _, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	_, otherPub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate second key pair: %v", err)
	}
	data := []byte("hello")
	sig := crypto.Sign(priv, data)
	if err := crypto.Verify(otherPub, data, sig); err == nil {
		t.Fatal("expected verify to fail against the wrong public key")
	}
}

func TestPubKeyHexRoundTrip(t *testing.T) {
	_, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	decoded, err := crypto.PubKeyFromHex(pub.Hex())
	if err != nil {
		t.Fatalf("PubKeyFromHex: %v", err)
	}
	if decoded.Hex() != pub.Hex() {
		t.Fatal("decoded public key does not match original")
	}
}

func TestAddressIs40HexChars(t *testing.T) {
	_, pub, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	addr := pub.Address()
	if len(addr) != 40 {
		t.Fatalf("address length = %d, want 40", len(addr))
	}
}

func TestHashIsDeterministic(t *testing.T) {
	data := []byte("driftchain")
	if crypto.Hash(data) != crypto.Hash(data) {
		t.Fatal("Hash should be deterministic for identical input")
	}
	if crypto.Hash(data) == crypto.Hash([]byte("different")) {
		t.Fatal("Hash should differ for different input")
	}
}
