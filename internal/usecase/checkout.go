package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/whatsapp"
)

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

var checkoutAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout attempts by outcome",
	},
	[]string{"outcome"},
)

type CheckoutInput struct {
	SessionID string
	StoreID   int64
	StoreName string
	UserAgent string
	Lines     []domain.CartLine
}

// Checkout runs the order-submission workflow: snapshot the cart,
// try to persist the order, build the WhatsApp message (with the order
// id when persistence worked, without it when it did not) and dispatch
// the deep link. A failed submission never aborts the workflow; only
// misuse (empty cart, re-entrant call) short-circuits before any side
// effect.
type Checkout struct {
	orders   OrderSubmitter
	gate     CheckoutGate
	builder  *whatsapp.Builder
	dispatch LinkDispatcher
	log      *slog.Logger
}

func NewCheckout(orders OrderSubmitter, gate CheckoutGate, builder *whatsapp.Builder, dispatch LinkDispatcher) *Checkout {
	return &Checkout{
		orders:   orders,
		gate:     gate,
		builder:  builder,
		dispatch: dispatch,
		log:      logging.New("checkout"),
	}
}

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (domain.SubmissionResult, error) {
	if len(in.Lines) == 0 {
		checkoutAttempts.WithLabelValues("empty_cart").Inc()
		return domain.SubmissionResult{}, ErrEmptyCart
	}

	ok, err := uc.gate.TryAcquire(ctx, in.SessionID)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("gate.TryAcquire: %w", err)
	}
	if !ok {
		checkoutAttempts.WithLabelValues("in_flight").Inc()
		return domain.SubmissionResult{}, ErrCheckoutInFlight
	}
	defer func() { _ = uc.gate.Release(ctx, in.SessionID) }()

	// Value snapshot: later cart mutations cannot reach the in-flight
	// submission.
	payload := domain.NewOrderPayload(in.StoreID, in.Lines)

	uc.log.Info("checkout", "session", in.SessionID, "state", domain.CheckoutSubmitting,
		"store", in.StoreID, "items", len(payload.Items))

	var orderID, submitErr string
	id, err := uc.orders.CreateOrder(ctx, payload)
	if err != nil {
		// Non-fatal: the customer still reaches WhatsApp, the order is
		// just not recorded server-side.
		submitErr = err.Error()
		uc.log.Warn("checkout", "session", in.SessionID, "state", domain.CheckoutSubmitFailed,
			"error", err)
		checkoutAttempts.WithLabelValues("submit_failed").Inc()
	} else {
		orderID = id
		uc.log.Info("checkout", "session", in.SessionID, "state", domain.CheckoutSubmitted,
			"order_id", orderID)
		checkoutAttempts.WithLabelValues("submitted").Inc()
	}

	msg := uc.builder.Message(in.Lines, in.StoreName, orderID)
	link := uc.builder.Link(msg)

	uc.dispatch.Dispatch(ctx, in.UserAgent, link)
	uc.log.Info("checkout", "session", in.SessionID, "state", domain.CheckoutDispatched)

	return domain.SubmissionResult{
		Success: orderID != "",
		OrderID: orderID,
		Error:   submitErr,
		Message: msg,
		Link:    link,
	}, nil
}
