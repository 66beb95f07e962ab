package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrInjected is the cause used by the simulated driver's failure knobs.
var ErrInjected = errors.New("injected failure")

// Sim is an in-memory accelerator used when no hardware is present and by
// the daemon tests. The device "program" is a counter that advances at a
// fixed packet rate once the event loop has been started. Every acquisition
// and remote call has a failure-injection knob so error paths can be driven
// deterministically.
type Sim struct {
	// Rate is the simulated packet rate per second. Zero means the device
	// never makes progress (the counter stays at its last value).
	Rate uint64

	FailOpen    bool
	FailProcess bool
	FailAlloc   bool
	FailInit    bool
	FailSteerRX bool
	FailSteerTX bool
	FailStart   bool
	FailRead    bool

	now func() time.Time

	mu      sync.Mutex
	history []string

	inited  atomic.Bool
	started atomic.Int64 // unix nanos of event loop start, 0 = not started
}

// NewSim creates a simulated driver producing rate packets per second.
func NewSim(rate uint64) *Sim {
	return &Sim{Rate: rate, now: time.Now}
}

func (s *Sim) Name() string { return "sim" }

func (s *Sim) record(ev string) {
	s.mu.Lock()
	s.history = append(s.history, ev)
	s.mu.Unlock()
}

// History returns the ordered acquisition/release/call events observed so
// far. Intended for tests.
func (s *Sim) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Sim) OpenDevice(_ context.Context, cfg Config) (Device, error) {
	if s.FailOpen {
		return nil, fmt.Errorf("open %s: %w", cfg.DeviceID, ErrInjected)
	}
	s.record("open")
	return &simHandle{sim: s, ev: "close-device"}, nil
}

func (s *Sim) CreateProcess(_ context.Context, _ Device) (Process, error) {
	if s.FailProcess {
		return nil, fmt.Errorf("create process: %w", ErrInjected)
	}
	s.record("create-process")
	return &simProcess{sim: s}, nil
}

func (s *Sim) AllocResources(_ context.Context, _ Process, cfg Config) (Resources, error) {
	if s.FailAlloc {
		return nil, fmt.Errorf("alloc resources: %w", ErrInjected)
	}
	s.record("alloc-resources")
	// A fake but stable device-side address derived from the region size.
	return &simResources{sim: s, addr: 0xdead0000 + cfg.DataRegionSize}, nil
}

func (s *Sim) InstallSteering(_ context.Context, _ Resources) (Steering, error) {
	if s.FailSteerRX {
		return nil, fmt.Errorf("install rx rule: %w", ErrInjected)
	}
	s.record("install-rx")
	if s.FailSteerTX {
		// Roll the RX rule back so the stage leaves no partial state.
		s.record("remove-rx")
		return nil, fmt.Errorf("install tx rule: %w", ErrInjected)
	}
	s.record("install-tx")
	return &simHandle{sim: s, ev: "remove-steering"}, nil
}

type simHandle struct {
	sim *Sim
	ev  string
}

func (h *simHandle) Close() error {
	h.sim.record(h.ev)
	return nil
}

type simProcess struct {
	sim *Sim
}

func (p *simProcess) Call(_ context.Context, fn string, arg uint64) (uint64, error) {
	s := p.sim
	switch fn {
	case FuncReflectorInit:
		if s.FailInit {
			return 0, fmt.Errorf("call %s: %w", fn, ErrInjected)
		}
		s.inited.Store(true)
		s.record("call-init")
		slog.Debug("sim device initialized", "data_region", fmt.Sprintf("%#x", arg))
		return 0, nil
	case FuncProcessedPackets:
		if s.FailRead {
			return 0, fmt.Errorf("call %s: %w", fn, ErrInjected)
		}
		return s.processed(), nil
	}
	return 0, fmt.Errorf("call %s: %w", fn, ErrUnknownFunc)
}

func (p *simProcess) Close() error {
	p.sim.record("destroy-process")
	return nil
}

// processed returns the cumulative packet count: Rate packets per second of
// event-loop runtime, never decreasing.
func (s *Sim) processed() uint64 {
	startNanos := s.started.Load()
	if startNanos == 0 {
		return 0
	}
	elapsed := s.now().Sub(time.Unix(0, startNanos))
	if elapsed < 0 {
		return 0
	}
	return s.Rate * uint64(elapsed/time.Second)
}

type simResources struct {
	sim  *Sim
	addr uint64
}

func (r *simResources) DataRegionAddr() uint64 { return r.addr }

func (r *simResources) Start(_ context.Context) error {
	s := r.sim
	if s.FailStart {
		return fmt.Errorf("run event handler: %w", ErrInjected)
	}
	if !s.inited.Load() {
		return errors.New("run event handler: device not initialized")
	}
	s.started.CompareAndSwap(0, s.now().UnixNano())
	s.record("start")
	return nil
}

func (r *simResources) Close() error {
	r.sim.record("free-resources")
	return nil
}
