package walletkey_test

import (
	"path/filepath"
	"testing"

	"github.com/driftchain/driftchain/crypto"
	"github.com/driftchain/driftchain/walletkey"
)

func TestSaveLoadKeyRoundTrip(t *testing.T) {
	priv, _, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	path := filepath.Join(t.TempDir(), "validator.key")

	if err := walletkey.SaveKey(path, "correct horse", priv); err != nil {
		t.Fatalf("SaveKey: %v", err)
	}
	loaded, err := walletkey.LoadKey(path, "correct horse")
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}
	if loaded.Hex() != priv.Hex() {
		t.Fatal("decrypted key does not match original")
	}
}

func TestLoadKeyRejectsWrongPassword(t *testing.T) {
	priv, _, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate key pair: %v", err)
	}
	path := filepath.Join(t.TempDir(), "validator.key")

	if err := walletkey.SaveKey(path, "correct horse", priv); err != nil {
		t.Fatalf("SaveKey: %v", err)
	}
	if _, err := walletkey.LoadKey(path, "wrong password"); err == nil {
		t.Fatal("expected LoadKey to reject the wrong password")
	}
}
