package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeEnv drives a Monitor with a scripted counter and a synthetic clock.
// Each counter read advances the clock by one second; once the script is
// exhausted the last value repeats. Sleeps return immediately.
type fakeEnv struct {
	t      time.Time
	reads  []uint64
	i      int
	sleeps int
}

func newFakeEnv(reads ...uint64) *fakeEnv {
	return &fakeEnv{t: time.Unix(1000, 0), reads: reads}
}

func (f *fakeEnv) now() time.Time { return f.t }

func (f *fakeEnv) read(context.Context) (uint64, error) {
	f.t = f.t.Add(time.Second)
	if f.i < len(f.reads) {
		f.i++
	}
	return f.reads[f.i-1], nil
}

func (f *fakeEnv) sleep(ctx context.Context, _ time.Duration) bool {
	f.sleeps++
	return ctx.Err() == nil
}

func (f *fakeEnv) monitor(window, poll time.Duration) *Monitor {
	m := New(ReaderFunc(f.read), window, poll)
	m.now = f.now
	m.sleep = f.sleep
	return m
}

func TestRunBucketsDeltas(t *testing.T) {
	// Cumulative counter holds at 0, jumps to 5, holds, then jumps to 9.
	env := newFakeEnv(0, 0, 5, 5, 5, 9)
	m := env.monitor(6*time.Second, time.Second)

	r, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Total != 9 {
		t.Errorf("Total = %d, want 9", r.Total)
	}
	if r.Cancelled {
		t.Error("Cancelled set on a full window")
	}

	// Per-second deltas must account for the whole counter movement.
	var sum uint64
	for _, n := range r.PerSecond {
		sum += n
	}
	if sum != r.Total {
		t.Errorf("sum(PerSecond) = %d, want Total %d (buckets %v)", sum, r.Total, r.PerSecond)
	}
	if r.Average != 9.0/6.0 {
		t.Errorf("Average = %v, want %v", r.Average, 9.0/6.0)
	}
}

func TestRunAverageUsesConfiguredWindow(t *testing.T) {
	// Steady 10 pps for a 60 second window.
	reads := make([]uint64, 60)
	for i := range reads {
		reads[i] = uint64((i + 1) * 10)
	}
	env := newFakeEnv(reads...)
	m := env.monitor(60*time.Second, 2*time.Second)

	r, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Total != 600 {
		t.Errorf("Total = %d, want 600", r.Total)
	}
	if r.Average != 10.0 {
		t.Errorf("Average = %v, want 10.0", r.Average)
	}
}

func TestRunAverageDividesByWindowOnEarlyExit(t *testing.T) {
	// Cancelled after roughly half the window: the divisor stays the full
	// window, so the average understates rather than extrapolates.
	env := newFakeEnv(100, 100)
	ctx, cancel := context.WithCancel(context.Background())
	m := env.monitor(10*time.Second, time.Second)
	m.sleep = func(context.Context, time.Duration) bool {
		cancel()
		return false
	}

	r, err := m.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Cancelled {
		t.Error("Cancelled not set")
	}
	if r.Average != 10.0 {
		t.Errorf("Average = %v, want 10.0 (100 pkts over the 10s window)", r.Average)
	}
}

func TestRunObservesCancellationDuringWait(t *testing.T) {
	// Counter never moves; the first sleep is interrupted. Run must return
	// without another counter read.
	env := newFakeEnv(0)
	ctx, cancel := context.WithCancel(context.Background())
	m := env.monitor(60*time.Second, 2*time.Second)

	reads := 0
	m.reader = ReaderFunc(func(ctx context.Context) (uint64, error) {
		reads++
		return env.read(ctx)
	})
	m.sleep = func(context.Context, time.Duration) bool {
		cancel()
		return false
	}

	r, err := m.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Cancelled {
		t.Error("Cancelled not set")
	}
	if reads != 1 {
		t.Errorf("reads = %d, want 1 (no re-read after interrupted wait)", reads)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	env := newFakeEnv(1, 2, 3)
	m := env.monitor(10*time.Second, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := m.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Cancelled {
		t.Error("Cancelled not set")
	}
	if r.Total != 0 {
		t.Errorf("Total = %d, want 0", r.Total)
	}
}

func TestRunCounterReadError(t *testing.T) {
	boom := errors.New("mailbox timeout")
	m := New(ReaderFunc(func(context.Context) (uint64, error) {
		return 0, boom
	}), 10*time.Second, time.Second)

	_, err := m.Run(context.Background())
	if err == nil {
		t.Fatal("Run succeeded despite read error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

func TestRunSleepsWhileCounterUnchanged(t *testing.T) {
	env := newFakeEnv(0, 0, 0, 7)
	m := env.monitor(8*time.Second, 2*time.Second)

	r, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Total != 7 {
		t.Errorf("Total = %d, want 7", r.Total)
	}
	// Three unchanged readings before the jump, plus the holds after the
	// script is exhausted.
	if env.sleeps < 3 {
		t.Errorf("sleeps = %d, want at least 3", env.sleeps)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	env := newFakeEnv(0, 3, 3)
	m := env.monitor(3*time.Second, time.Second)

	final, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	snap := m.Snapshot()
	if snap.Total != final.Total || snap.Cancelled != final.Cancelled {
		t.Errorf("Snapshot = %+v, want final report %+v", snap, final)
	}
	if len(snap.PerSecond) > 0 {
		snap.PerSecond[0] = 999
		if again := m.Snapshot(); len(again.PerSecond) > 0 && again.PerSecond[0] == 999 {
			t.Error("Snapshot shares its PerSecond slice with the monitor")
		}
	}
}
