// Package lifecycle implements staged acquisition of accelerator resources
// with guaranteed reverse-order release.
//
// Resource domains form a strict total order: a domain may only be acquired
// once every earlier domain is held, so the set of held domains is always a
// prefix of the order. Each successful acquisition pushes a release guard
// onto a Stack; teardown pops and runs the guards in reverse, best-effort,
// on every exit path.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
)

// Domain identifies one ordered resource domain.
type Domain int

const (
	// NetworkBinding is the network device binding and protection domain.
	NetworkBinding Domain = iota
	// DeviceRuntime is the device-resident execution context and its memory.
	DeviceRuntime
	// DeviceResources are the device work queues, completion queues and the
	// shared data region.
	DeviceResources
	// SteeringRules are the installed RX and TX steering rules.
	SteeringRules

	numDomains
)

func (d Domain) String() string {
	switch d {
	case NetworkBinding:
		return "network-binding"
	case DeviceRuntime:
		return "device-runtime"
	case DeviceResources:
		return "device-resources"
	case SteeringRules:
		return "steering-rules"
	}
	return fmt.Sprintf("domain(%d)", int(d))
}

// Domains returns all domains in acquisition order.
func Domains() []Domain {
	out := make([]Domain, 0, numDomains)
	for d := NetworkBinding; d < numDomains; d++ {
		out = append(out, d)
	}
	return out
}

// StageError reports that acquisition of a specific domain failed. The
// stages acquired before it have already been scheduled for release by the
// caller's Stack; the failing stage rolls its own partial side effects back
// before returning.
type StageError struct {
	Domain Domain
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Domain, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Stage pairs one domain's acquisition with its release. Acquire returns the
// release operation for the resources it obtained; the release must be safe
// to call exactly once.
type Stage struct {
	Domain  Domain
	Acquire func(ctx context.Context) (release func() error, err error)
}

// Manager acquires a fixed sequence of stages in order.
type Manager struct {
	stages []Stage
}

// NewManager creates a Manager. Stages must be listed in domain order with
// no gaps; NewManager panics otherwise, since a hole in the order would break
// the prefix invariant.
func NewManager(stages ...Stage) *Manager {
	for i, st := range stages {
		if st.Domain != Domain(i) {
			panic(fmt.Sprintf("lifecycle: stage %d has domain %s, want %s", i, st.Domain, Domain(i)))
		}
		if st.Acquire == nil {
			panic(fmt.Sprintf("lifecycle: stage %s has nil Acquire", st.Domain))
		}
	}
	return &Manager{stages: stages}
}

// Acquire runs every stage in order, pushing each release guard onto stack.
// On the first failure it returns a *StageError naming the failed domain and
// leaves the already-acquired prefix on the stack for the caller to release.
// Cancellation between stages counts as a failure of the stage that was
// about to run.
func (m *Manager) Acquire(ctx context.Context, stack *Stack) error {
	for _, st := range m.stages {
		if err := ctx.Err(); err != nil {
			return &StageError{Domain: st.Domain, Err: err}
		}
		release, err := st.Acquire(ctx)
		if err != nil {
			return &StageError{Domain: st.Domain, Err: err}
		}
		stack.push(st.Domain, release)
		slog.Info("resource domain acquired", "domain", st.Domain.String())
	}
	return nil
}
