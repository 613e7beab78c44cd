package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/http/middleware"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/cart"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/usecase"
)

type CheckoutHandler struct {
	checkout *usecase.Checkout
	carts    cart.Store
}

func NewCheckoutHandler(checkout *usecase.Checkout, carts cart.Store) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, carts: carts}
}

type checkoutReq struct {
	StoreID   int64  `json:"store_id" binding:"required"`
	StoreName string `json:"store_name" binding:"required"`
}

type checkoutResp struct {
	Success    bool      `json:"success"`
	OrderID    string    `json:"order_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	Message    string    `json:"message"`
	Navigation Directive `json:"navigation"`
}

// POST /v1/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	sid := middleware.SessionID(c)

	snap, err := h.carts.Snapshot(c.Request.Context(), sid)
	if err != nil {
		logging.From(c).Error("cart snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	ctx, directive := WithDirective(c.Request.Context())

	res, err := h.checkout.Execute(ctx, usecase.CheckoutInput{
		SessionID: sid,
		StoreID:   req.StoreID,
		StoreName: req.StoreName,
		UserAgent: c.Request.UserAgent(),
		Lines:     snap.Lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart"})
		case errors.Is(err, usecase.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "checkout_in_progress"})
		default:
			logging.From(c).Error("checkout", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		}
		return
	}

	// Caller contract: the cart is cleared only on confirmed
	// submission, so a failed attempt can be retried as-is.
	if res.Success {
		if err := h.carts.Clear(ctx, sid); err != nil {
			logging.From(c).Warn("clear cart after checkout", "error", err)
		}
	}

	c.JSON(http.StatusOK, checkoutResp{
		Success:    res.Success,
		OrderID:    res.OrderID,
		Error:      res.Error,
		Message:    res.Message,
		Navigation: *directive,
	})
}
