package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/db"
	"github.com/takeam/admin-backend/internal/events"
	apphttp "github.com/takeam/admin-backend/internal/http"
	"github.com/takeam/admin-backend/internal/http/handlers"
	"github.com/takeam/admin-backend/internal/repositories"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	accountRepo := repositories.NewAccountRepo(pool)
	agentRepo := repositories.NewAgentRepo(pool)
	lifecycleRepo := repositories.NewLifecycleRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	requestRepo := repositories.NewRequestRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	lifecycleService := services.NewLifecycleService(lifecycleRepo, publisher, cfg.StorageTimeout, log)
	accountService := services.NewAccountService(accountRepo, agentRepo, auditRepo, log)
	statsService := services.NewStatsService(requestRepo, paymentRepo)
	orderService := services.NewOrderService(orderRepo, publisher, log)
	productService := services.NewProductService(productRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(accountRepo, cfg, log)
	agentHandler := handlers.NewAgentHandler(agentRepo, lifecycleService, cfg, log)
	userHandler := handlers.NewUserHandler(accountService, lifecycleService, cfg, log)
	requestHandler := handlers.NewRequestHandler(requestRepo, cfg, log)
	orderHandler := handlers.NewOrderHandler(orderService, cfg, log)
	productHandler := handlers.NewProductHandler(productService, cfg, log)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg, log)
	auditHandler := handlers.NewAuditHandler(auditRepo, cfg, log)
	adminHandler := handlers.NewAdminHandler(accountService, statsService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, agentHandler, userHandler, requestHandler, orderHandler,
		productHandler, paymentHandler, auditHandler, adminHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
