package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/http/middleware"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
)

func NewRouter(ch *CatalogHandler, crt *CartHandler, co *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))
	r.Use(middleware.Session())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/stores", ch.ListStores)
		v1.GET("/catalog", ch.ListProducts)
		v1.GET("/catalog/filters", ch.ListFilters)

		v1.GET("/cart", crt.Get)
		v1.POST("/cart/items", crt.ChangeQuantity)
		v1.DELETE("/cart", crt.Clear)

		v1.POST("/checkout", co.Checkout)
	}

	return r
}
