package main

import (
	"context"
	"log"
	"time"

	"payment-gateway/config"
	"payment-gateway/controllers"
	"payment-gateway/events"
	"payment-gateway/middleware"
	"payment-gateway/routes"
	"payment-gateway/services"
	"payment-gateway/webhook"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("[PaymentGateway] failed to load config: ", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("[PaymentGateway] failed to initialize logger: ", err)
	}
	defer logger.Sync()

	// Event-id ledger: Redis when configured, process-local otherwise.
	var ledger events.Ledger = events.NewMemoryLedger()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		ledger = events.NewRedisLedger(client, 72*time.Hour)
		logger.Info("using Redis event ledger")
	}

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.BaseURL, cfg.Currency, cfg.PlatformFeeBps, logger)
	verifier := webhook.NewVerifier(cfg.StripeWebhookSecret, cfg.WebhookTolerance)
	dispatcher := events.NewDispatcher(events.NewLogRecorder(logger), ledger, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	routes.Register(r, routes.Controllers{
		Products:     controllers.NewProductController(stripeSvc, cfg.Currency),
		Connect:      controllers.NewConnectController(stripeSvc),
		Subscription: controllers.NewSubscriptionController(stripeSvc),
		Webhooks:     controllers.NewWebhookController(verifier, dispatcher, logger),
		Environment:  controllers.NewEnvironmentController(cfg),
	})

	logger.Info("payment gateway listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
