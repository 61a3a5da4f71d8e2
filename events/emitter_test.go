package events_test

import (
	"testing"

	"github.com/driftchain/driftchain/events"
)

func TestEmitDeliversToAllSubscribersOfType(t *testing.T) {
	e := events.NewEmitter()
	var gotA, gotB int
	e.Subscribe(events.EventTxAccepted, func(ev events.Event) { gotA++ })
	e.Subscribe(events.EventTxAccepted, func(ev events.Event) { gotB++ })
	e.Subscribe(events.EventBlockAccepted, func(ev events.Event) { t.Fatal("wrong type delivered") })

	e.Emit(events.Event{Type: events.EventTxAccepted, Hash: "abc"})

	if gotA != 1 || gotB != 1 {
		t.Fatalf("gotA=%d gotB=%d, want 1 and 1", gotA, gotB)
	}
}

func TestEmitRecoversFromHandlerPanic(t *testing.T) {
	e := events.NewEmitter()
	called := false
	e.Subscribe(events.EventPeerJoined, func(ev events.Event) { panic("boom") })
	e.Subscribe(events.EventPeerJoined, func(ev events.Event) { called = true })

	e.Emit(events.Event{Type: events.EventPeerJoined})

	if !called {
		t.Fatal("a panicking handler must not prevent later handlers from running")
	}
}

func TestEmitWithNoSubscribersIsNoop(t *testing.T) {
	e := events.NewEmitter()
	e.Emit(events.Event{Type: events.EventRandAccepted})
}
