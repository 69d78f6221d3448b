package main

import (
	"context"
	"os"
	"time"

	"smart_canteen/internal/config"
	"smart_canteen/internal/handlers"
	"smart_canteen/internal/middlewares"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"
	"smart_canteen/internal/storage"
	"smart_canteen/pkg/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Logging
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log.Logger = log.Output(os.Stdout)

	// Persistence gateway
	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	// Load persisted collections, seeding the menu on first run
	ctx := context.Background()
	menuRepo := repository.NewMenuRepository(store)
	if err := menuRepo.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load menu")
	}
	orderRepo := repository.NewOrderRepository(store)
	if err := orderRepo.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load orders")
	}
	cartRepo := repository.NewCartRepository()

	// Optional order-event webhook
	var notifier *notify.Client
	if cfg.NotifyWebhookURL != "" {
		notifier = notify.NewClient(cfg.NotifyWebhookURL)
	}

	// Services
	taxRate := decimal.NewFromInt(int64(cfg.TaxRatePercent)).Div(decimal.NewFromInt(100))
	sessionService := services.NewSessionService()
	menuService := services.NewMenuService(menuRepo, orderRepo)
	cartService := services.NewCartService(cartRepo, menuRepo, taxRate)
	orderService := services.NewOrderService(orderRepo, cartRepo, menuRepo, notifier, taxRate)

	// Handlers
	menuHandler := handlers.NewMenuHandler(menuService, sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Setup routes
	router := gin.Default()
	router.Use(middlewares.CORSMiddleware())
	router.Use(middlewares.Metrics())

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/menu", menuHandler.List)
		api.GET("/menu/bestseller", menuHandler.Bestseller)

		api.GET("/cart", cartHandler.Get)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)

		api.GET("/orders", orderHandler.List)
		api.POST("/orders", orderHandler.Place)

		api.GET("/session", sessionHandler.Get)
		api.PUT("/session/view", sessionHandler.SetView)
		api.PUT("/session/category", sessionHandler.SetCategory)
		api.PUT("/session/search", sessionHandler.SetSearch)
		api.POST("/session/admin", sessionHandler.ToggleAdmin)
	}

	admin := api.Group("/admin", middlewares.AdminRequired(sessionService))
	{
		admin.POST("/menu", menuHandler.AddItem)
		admin.DELETE("/menu/:id", menuHandler.RemoveItem)
		admin.PATCH("/menu/:id/availability", menuHandler.ToggleAvailability)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		admin.DELETE("/orders", orderHandler.ClearHistory)
		admin.GET("/stats", orderHandler.Stats)
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Str("backend", cfg.StoreBackend).Msg("server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		return storage.OpenRedis(cfg.RedisURL, cfg.StoreNamespace)
	case "memory":
		return storage.NewMemory(cfg.StoreNamespace), nil
	default:
		return storage.OpenBolt(cfg.BoltPath, cfg.StoreNamespace)
	}
}
