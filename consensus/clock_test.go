package consensus_test

import (
	"testing"
	"time"

	"github.com/driftchain/driftchain/consensus"
)

func TestTickerClockAlternatesProposeThenEmit(t *testing.T) {
	clock := consensus.NewTickerClock(20 * time.Millisecond)
	stop := make(chan struct{})
	defer close(stop)

	ticks := clock.Ticks(stop)

	first := <-ticks
	if first != consensus.PhasePropose {
		t.Fatalf("first phase = %v, want PhasePropose", first)
	}
	second := <-ticks
	if second != consensus.PhaseEmit {
		t.Fatalf("second phase = %v, want PhaseEmit", second)
	}
}

func TestTickerClockNowAdvances(t *testing.T) {
	clock := consensus.NewTickerClock(time.Second)
	first := clock.Now()
	time.Sleep(10 * time.Millisecond)
	second := clock.Now()
	if second <= first {
		t.Fatalf("Now() did not advance: %v then %v", first, second)
	}
}

func TestTickerClockStopsCleanly(t *testing.T) {
	clock := consensus.NewTickerClock(10 * time.Millisecond)
	stop := make(chan struct{})
	ticks := clock.Ticks(stop)

	<-ticks
	close(stop)

	select {
	case _, ok := <-ticks:
		if ok {
			// a tick may already have been in flight; drain one more and expect close.
			if _, ok2 := <-ticks; ok2 {
				t.Fatal("ticks channel did not close after stop")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("ticks channel never closed after stop")
	}
}
