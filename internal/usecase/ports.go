package usecase

import (
	"context"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
)

// OrderSubmitter relays an order payload to the order-creation endpoint
// and returns the created order id.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error)
}

// CheckoutGate serializes checkout attempts per session. TryAcquire
// reports false when another attempt is already in flight; Release
// opens the gate again once the workflow finished.
type CheckoutGate interface {
	TryAcquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

// LinkDispatcher performs one best-effort navigation to a deep link.
type LinkDispatcher interface {
	Dispatch(ctx context.Context, userAgent, url string)
}
