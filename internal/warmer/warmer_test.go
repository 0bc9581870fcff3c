package warmer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
)

var errWarm = errors.New("boom")

func countingTask(name string, counter *atomic.Int32, fail *atomic.Bool, notify chan struct{}) Task {
	return Task{Name: name, Run: func(context.Context) error {
		if counter.Add(1) == 1 && notify != nil {
			close(notify)
		}
		if fail.Load() {
			return errWarm
		}
		return nil
	}}
}

func TestWarmerRunsOnStartAndOnTick(t *testing.T) {
	var calls atomic.Int32
	var errVal atomic.Bool
	notify := make(chan struct{})
	w := New([]Task{countingTask("roster", &calls, &errVal, notify)}, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	select {
	case <-notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial warm")
	}
	time.Sleep(35 * time.Millisecond) // allow ticker fires

	cancel()
	_ = w.Stop(context.Background())

	if calls.Load() < 2 {
		t.Fatalf("expected initial and ticked runs, got %d", calls.Load())
	}
	if !w.Status().IsReady() {
		t.Fatalf("expected ready after successful cycles")
	}
}

func TestWarmerStopsOnContextCancel(t *testing.T) {
	var calls atomic.Int32
	var errVal atomic.Bool
	notify := make(chan struct{})
	w := New([]Task{countingTask("schedule", &calls, &errVal, notify)}, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	w.Start(ctx)
	select {
	case <-notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial warm")
	}

	cancel()
	_ = w.Stop(context.Background())
	time.Sleep(10 * time.Millisecond)

	callsAfterStop := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional runs after stop; before=%d after=%d", callsAfterStop, calls.Load())
	}
}

func TestWarmerStartAndStopAreIdempotent(t *testing.T) {
	w := New(nil, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	w.Start(ctx)

	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestWarmerDefaultsInterval(t *testing.T) {
	if w := New(nil, nil, nil, 0); w.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, w.interval)
	}
}

func TestWarmerStatusTracksFailuresAndSuccess(t *testing.T) {
	var calls atomic.Int32
	var errVal atomic.Bool
	errVal.Store(true)
	var otherCalls atomic.Int32
	var okVal atomic.Bool

	w := New([]Task{
		countingTask("defense_ranks", &calls, &errVal, nil),
		countingTask("roster", &otherCalls, &okVal, nil),
		{Name: "noop"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder(), time.Minute)

	for i := 0; i < 3; i++ {
		w.warmOnce(context.Background())
	}
	status := w.Status()
	if status.ConsecutiveFailures != 3 || !strings.Contains(status.LastError, "defense_ranks") {
		t.Fatalf("unexpected failing status %+v", status)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready without success")
	}
	if otherCalls.Load() != 3 {
		t.Fatalf("expected remaining tasks to run despite failure, got %d", otherCalls.Load())
	}

	errVal.Store(false)
	w.warmOnce(context.Background())
	status = w.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" || status.LastSuccess.IsZero() {
		t.Fatalf("expected failures reset after success, got %+v", status)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusIsReadyThreshold(t *testing.T) {
	s := Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}
	if !s.IsReady() {
		t.Fatalf("expected ready under failure threshold")
	}
	s.ConsecutiveFailures = 3
	if s.IsReady() {
		t.Fatalf("expected not ready at failure threshold")
	}
}
