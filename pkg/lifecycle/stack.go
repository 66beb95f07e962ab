package lifecycle

import (
	"log/slog"
	"sync"
)

type guard struct {
	domain  Domain
	release func() error
}

// Stack is the ordered set of release guards for acquired domains. Guards
// are pushed in acquisition order and released in exact reverse order.
// Release failures are logged and do not stop the remaining guards.
type Stack struct {
	mu     sync.Mutex
	guards []guard
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) push(d Domain, release func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guards = append(s.guards, guard{domain: d, release: release})
}

// Held reports whether the given domain is currently acquired.
func (s *Stack) Held(d Domain) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guards {
		if g.domain == d {
			return true
		}
	}
	return false
}

// Acquired returns the acquired domains in acquisition order.
func (s *Stack) Acquired() []Domain {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Domain, len(s.guards))
	for i, g := range s.guards {
		out[i] = g.domain
	}
	return out
}

// Release tears down every acquired domain in reverse acquisition order.
// Each release is best-effort: a failure is logged and the earlier guards
// are still run. The stack is empty afterwards, so a second Release is a
// no-op.
func (s *Stack) Release() {
	s.mu.Lock()
	guards := s.guards
	s.guards = nil
	s.mu.Unlock()

	for i := len(guards) - 1; i >= 0; i-- {
		g := guards[i]
		if err := g.release(); err != nil {
			slog.Error("failed to release resource domain", "domain", g.domain.String(), "err", err)
			continue
		}
		slog.Info("resource domain released", "domain", g.domain.String())
	}
}
