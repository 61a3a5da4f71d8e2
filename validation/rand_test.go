package validation_test

import (
	"testing"

	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/validation"
)

func TestRandAcceptsValidSubmission(t *testing.T) {
	priv, pk := mustWallet(t)
	vr := &core.ValidatorRand{
		ValidatorPKHex:   pk,
		PrevBlockHashHex: "head-hash",
		Timestamp:        1000,
		Rand:             42,
	}
	vr.Sign(priv)

	if err := validation.Rand(vr, 2000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRandRejectsMissingSignature(t *testing.T) {
	_, pk := mustWallet(t)
	vr := &core.ValidatorRand{
		ValidatorPKHex:   pk,
		PrevBlockHashHex: "head-hash",
		Timestamp:        1000,
		Rand:             42,
	}

	err := validation.Rand(vr, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.RandInvalid {
		t.Fatalf("got (%v, %v), want RandInvalid", kind, ok)
	}
}

func TestRandRejectsFutureTimestamp(t *testing.T) {
	priv, pk := mustWallet(t)
	vr := &core.ValidatorRand{
		ValidatorPKHex:   pk,
		PrevBlockHashHex: "head-hash",
		Timestamp:        5000,
		Rand:             42,
	}
	vr.Sign(priv)

	err := validation.Rand(vr, 1000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.RandInvalid {
		t.Fatalf("got (%v, %v), want RandInvalid", kind, ok)
	}
}

func TestRandRejectsTamperedRandValue(t *testing.T) {
	priv, pk := mustWallet(t)
	vr := &core.ValidatorRand{
		ValidatorPKHex:   pk,
		PrevBlockHashHex: "head-hash",
		Timestamp:        1000,
		Rand:             42,
	}
	vr.Sign(priv)
	vr.Rand = 43

	err := validation.Rand(vr, 2000)
	kind, ok := validation.KindOf(err)
	if !ok || kind != validation.RandInvalid {
		t.Fatalf("got (%v, %v), want RandInvalid", kind, ok)
	}
}
