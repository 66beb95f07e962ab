// Package telemetry implements the bounded observation window over the
// device's cumulative packet counter.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// CounterReader reads the device's cumulative processed-packet counter via a
// synchronous remote call. The count is monotonically non-decreasing; a read
// error is terminal for the run.
type CounterReader interface {
	ReadCounter(ctx context.Context) (uint64, error)
}

// ReaderFunc adapts a function to the CounterReader interface.
type ReaderFunc func(ctx context.Context) (uint64, error)

func (f ReaderFunc) ReadCounter(ctx context.Context) (uint64, error) { return f(ctx) }

// Report is the outcome of one observation window.
type Report struct {
	// Total is the final cumulative packet count.
	Total uint64
	// PerSecond holds the counter delta observed in each elapsed second
	// since the window started, up to the highest second touched.
	PerSecond []uint64
	// Average is Total divided by the configured window length in seconds,
	// regardless of how much of the window actually ran.
	Average float64
	// Elapsed is the wall time the monitor actually ran.
	Elapsed time.Duration
	// Cancelled is set when the window ended by cancellation rather than by
	// elapsing.
	Cancelled bool
}

const (
	// DefaultWindow bounds the observation loop.
	DefaultWindow = 60 * time.Second
	// DefaultPoll is the sleep interval while the counter is unchanged.
	DefaultPoll = 2 * time.Second
)

// Monitor samples the device counter for a fixed window and buckets counter
// deltas by elapsed second. While the counter is unchanged it sleeps,
// re-logging the stale reading without re-issuing the remote read; the read
// is only reissued after the wait exits. Cancellation is observed at every
// loop head and at every wake from sleep.
type Monitor struct {
	reader CounterReader
	window time.Duration
	poll   time.Duration

	// Overridable in tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) bool

	mu   sync.Mutex
	last Report
}

// New creates a Monitor over reader. Non-positive durations fall back to the
// defaults.
func New(reader CounterReader, window, poll time.Duration) *Monitor {
	if window <= 0 {
		window = DefaultWindow
	}
	if poll <= 0 {
		poll = DefaultPoll
	}
	return &Monitor{
		reader: reader,
		window: window,
		poll:   poll,
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// Window returns the configured observation window.
func (m *Monitor) Window() time.Duration { return m.window }

// Snapshot returns the most recent report state. Safe to call concurrently
// with Run; before the first sample it is the zero Report.
func (m *Monitor) Snapshot() Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.last
	r.PerSecond = append([]uint64(nil), m.last.PerSecond...)
	return r
}

// Run observes the device counter until the window elapses or ctx is
// cancelled. The accumulated report is returned on every exit path,
// including alongside a counter-read error.
func (m *Monitor) Run(ctx context.Context) (Report, error) {
	windowSecs := int((m.window + time.Second - 1) / time.Second)
	buckets := make([]uint64, windowSecs)
	start := m.now()

	var last uint64
	current := 0

	finish := func() Report {
		r := Report{
			Total:     last,
			PerSecond: append([]uint64(nil), buckets[:current+1]...),
			Average:   float64(last) / m.window.Seconds(),
			Elapsed:   m.now().Sub(start),
			Cancelled: ctx.Err() != nil,
		}
		m.store(r)
		return r
	}

	for ctx.Err() == nil && m.now().Sub(start) < m.window {
		count, err := m.reader.ReadCounter(ctx)
		if err != nil {
			return finish(), fmt.Errorf("read device counter: %w", err)
		}

		// No new packets: sleep one poll interval and re-log the stale
		// reading. The read is not reissued inside the wait; the loop head
		// reads again after the wake, so cancellation and the window bound
		// are both observed within one interval.
		if count == last {
			if !m.sleep(ctx, m.poll) {
				return finish(), nil
			}
			slog.Info("device has processed packets", "total", count)
			continue
		}

		sec := int(m.now().Sub(start) / time.Second)
		if sec >= windowSecs {
			sec = windowSecs - 1
		}
		if sec != current {
			current = sec
			buckets[sec] = 0
		}
		// Overwrite, not accumulate: a repeated update within the same
		// second replaces the bucket.
		buckets[sec] = count - last
		last = count
		m.store(Report{
			Total:     last,
			PerSecond: append([]uint64(nil), buckets[:current+1]...),
			Average:   float64(last) / m.window.Seconds(),
			Elapsed:   m.now().Sub(start),
		})
	}

	return finish(), nil
}

func (m *Monitor) store(r Report) {
	m.mu.Lock()
	m.last = r
	m.mu.Unlock()
}

// sleepCtx sleeps for d or until ctx is cancelled, whichever comes first.
// It returns false on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
