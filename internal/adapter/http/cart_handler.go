package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/http/middleware"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/cart"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/money"
)

type CartHandler struct {
	carts cart.Store
}

func NewCartHandler(carts cart.Store) *CartHandler {
	return &CartHandler{carts: carts}
}

type changeQuantityReq struct {
	Product domain.Product `json:"product" binding:"required"`
	Delta   int            `json:"delta" binding:"required"`
}

type cartLineResp struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal string         `json:"subtotal"`
}

type cartResp struct {
	Lines      []cartLineResp `json:"lines"`
	TotalItems int            `json:"total_items"`
	TotalValue string         `json:"total_value"`
}

func toCartResp(c domain.Cart) cartResp {
	return cartResp{
		Lines: lo.Map(c.Lines, func(l domain.CartLine, _ int) cartLineResp {
			return cartLineResp{
				Product:  l.Product,
				Quantity: l.Quantity,
				Subtotal: money.Format(l.Subtotal()),
			}
		}),
		TotalItems: c.TotalItems(),
		TotalValue: money.Format(c.TotalValue()),
	}
}

// GET /v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	snap, err := h.carts.Snapshot(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		logging.From(c).Error("cart snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, toCartResp(snap))
}

// POST /v1/cart/items
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req changeQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_product_id"})
		return
	}

	updated, err := h.carts.ChangeQuantity(c.Request.Context(), middleware.SessionID(c), req.Product, req.Delta)
	if err != nil {
		logging.From(c).Error("cart change quantity", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, toCartResp(updated))
}

// DELETE /v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		logging.From(c).Error("cart clear", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, toCartResp(domain.Cart{}))
}
