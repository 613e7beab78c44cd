package cart

import (
	"context"
	"sort"
	"sync"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
)

// Store owns per-session carts. Implementations must never keep a line
// with quantity below one: a delta driving the quantity to zero or
// lower removes the line instead.
type Store interface {
	// ChangeQuantity adds delta (typically +1/-1) to the quantity held
	// for product p and returns the resulting cart. Deltas producing a
	// non-positive quantity remove the line, they are not an error.
	ChangeQuantity(ctx context.Context, sessionID string, p domain.Product, delta int) (domain.Cart, error)

	// Clear drops the whole cart for the session.
	Clear(ctx context.Context, sessionID string) error

	// Snapshot returns a copy of the session's cart; callers own the
	// returned slice and cannot affect the stored state through it.
	Snapshot(ctx context.Context, sessionID string) (domain.Cart, error)
}

// MemoryStore is the single-process Store. Lines are keyed by product
// id per session.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[string]domain.CartLine)}
}

func (s *MemoryStore) ChangeQuantity(_ context.Context, sessionID string, p domain.Product, delta int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	if lines == nil {
		lines = make(map[string]domain.CartLine)
		s.carts[sessionID] = lines
	}

	qty := lines[p.ID].Quantity + delta
	if qty <= 0 {
		delete(lines, p.ID)
	} else {
		lines[p.ID] = domain.CartLine{Product: p, Quantity: qty}
	}

	return cartOf(lines), nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

func (s *MemoryStore) Snapshot(_ context.Context, sessionID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cartOf(s.carts[sessionID]), nil
}

// cartOf copies lines into a Cart sorted by product id, so message
// numbering stays stable across snapshots of the same cart.
func cartOf(lines map[string]domain.CartLine) domain.Cart {
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Product.ID < out[j].Product.ID
	})
	return domain.Cart{Lines: out}
}

var _ Store = (*MemoryStore)(nil)
