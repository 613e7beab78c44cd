package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/catalog"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
)

type CatalogHandler struct {
	catalog *catalog.Client
}

func NewCatalogHandler(cc *catalog.Client) *CatalogHandler {
	return &CatalogHandler{catalog: cc}
}

// GET /v1/stores
func (h *CatalogHandler) ListStores(c *gin.Context) {
	stores, err := h.catalog.GetStores(c.Request.Context())
	if err != nil {
		logging.From(c).Error("list stores", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_unavailable"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GET /v1/catalog?store=1&group=&brand=&category=&color=&search=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Query("store"), 10, 64)
	if err != nil || storeID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_store"})
		return
	}

	q := catalog.ProductQuery{
		Group:    queryID(c, "group"),
		Brand:    queryID(c, "brand"),
		Category: queryID(c, "category"),
		Color:    queryID(c, "color"),
		Search:   c.Query("search"),
	}

	page, err := h.catalog.GetProducts(c.Request.Context(), storeID, q)
	if err != nil {
		logging.From(c).Error("list products", "store", storeID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_unavailable"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /v1/catalog/filters?store=1
func (h *CatalogHandler) ListFilters(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Query("store"), 10, 64)
	if err != nil || storeID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_store"})
		return
	}

	filters, err := h.catalog.GetFilters(c.Request.Context(), storeID)
	if err != nil {
		logging.From(c).Error("list filters", "store", storeID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_unavailable"})
		return
	}
	c.JSON(http.StatusOK, filters)
}

// queryID parses an optional numeric filter; absent or invalid values
// mean "no filter".
func queryID(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
