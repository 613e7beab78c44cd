package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Cristianojapa/pedido-rapido-catalao/configs"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/cache"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/catalog"
	httpadapter "github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/http"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/adapter/orders"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/cart"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/deeplink"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/usecase"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/whatsapp"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)

	var carts cart.Store = cart.NewMemoryStore()
	var gate usecase.CheckoutGate = usecase.NewMemoryGate()
	cleanup := func() {}

	// Redis-backed carts and checkout gate when an addr is configured,
	// so multiple instances can share session state.
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		carts = cache.NewRedisCartStore(rdb, cfg.Cart.SessionTTL)
		gate = cache.NewRedisCheckoutGate(rdb, cfg.Checkout.GateTTL)
		cleanup = func() { _ = rdb.Close() }
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	orderClient := orders.NewClient(cfg.Orders.BaseURL, cfg.Orders.Timeout, cfg.App.Name+"/checkout")

	builder := whatsapp.NewBuilder(cfg.WhatsApp.Brand, cfg.WhatsApp.Number)
	dispatcher := deeplink.New(deeplink.UAClassifier{}, httpadapter.ResponseNavigator{})
	checkoutUC := usecase.NewCheckout(orderClient, gate, builder, dispatcher)

	router := httpadapter.NewRouter(
		httpadapter.NewCatalogHandler(catalogClient),
		httpadapter.NewCartHandler(carts),
		httpadapter.NewCheckoutHandler(checkoutUC, carts),
	)

	return &App{Router: router}, cleanup, nil
}

func (a *App) Run(cfg configs.Config) error {
	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      a.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return srv.ListenAndServe()
}
