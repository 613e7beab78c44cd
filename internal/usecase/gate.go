package usecase

import (
	"context"
	"sync"
)

// MemoryGate is the single-process CheckoutGate: at most one in-flight
// checkout per session, tracked in memory.
type MemoryGate struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewMemoryGate() *MemoryGate {
	return &MemoryGate{inFlight: make(map[string]struct{})}
}

func (g *MemoryGate) TryAcquire(_ context.Context, sessionID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[sessionID]; busy {
		return false, nil
	}
	g.inFlight[sessionID] = struct{}{}
	return true, nil
}

func (g *MemoryGate) Release(_ context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, sessionID)
	return nil
}

var _ CheckoutGate = (*MemoryGate)(nil)
