package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/handlers"
	"github.com/takeam/admin-backend/internal/middleware"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	agentHandler *handlers.AgentHandler,
	userHandler *handlers.UserHandler,
	requestHandler *handlers.RequestHandler,
	orderHandler *handlers.OrderHandler,
	productHandler *handlers.ProductHandler,
	paymentHandler *handlers.PaymentHandler,
	auditHandler *handlers.AuditHandler,
	adminHandler *handlers.AdminHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/login", authHandler.Login)

	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints: admin token required
	protected := api.Group("", middleware.AuthMiddleware(cfg, log), middleware.AdminMiddleware())

	// Dashboard stats
	protected.Get("/admin/stats", adminHandler.GetStats)

	// Agents
	protected.Get("/admin/agents/pending", agentHandler.ListPending)
	protected.Get("/admin/agents/active", agentHandler.ListActive)
	protected.Get("/admin/agents/:id", agentHandler.GetAgent)
	protected.Post("/admin/agents/:id/approve", agentHandler.Approve)
	protected.Post("/admin/agents/:id/reject", agentHandler.Reject)

	// Users / traders
	protected.Get("/admin/users", userHandler.ListUsers)
	protected.Get("/admin/users/:id", userHandler.GetUser)
	protected.Put("/admin/users/:id/status", userHandler.UpdateStatus)

	// Pickup requests
	protected.Get("/admin/requests", requestHandler.ListAll)
	protected.Get("/admin/requests/pending", requestHandler.ListPending)
	protected.Get("/admin/requests/active", requestHandler.ListActive)
	protected.Get("/admin/requests/completed", requestHandler.ListCompleted)
	protected.Get("/admin/requests/:id", requestHandler.GetRequest)

	// Orders
	protected.Get("/admin/orders", orderHandler.ListOrders)
	protected.Get("/admin/orders/:id", orderHandler.GetOrder)
	protected.Put("/admin/orders/:id/delivery-status", orderHandler.UpdateDeliveryStatus)

	// Products
	protected.Post("/admin/products", productHandler.CreateProduct)
	protected.Get("/admin/products", productHandler.ListProducts)
	protected.Get("/admin/products/:id", productHandler.GetProduct)
	protected.Put("/admin/products/:id", productHandler.UpdateProduct)
	protected.Delete("/admin/products/:id", productHandler.DeleteProduct)

	// Payments (gradings)
	protected.Get("/gradings/admin/pending-payments", paymentHandler.ListPendingPayments)
	protected.Put("/gradings/:id/mark-paid", paymentHandler.MarkPaid)

	// Audit trail
	protected.Get("/admin/audit-logs", auditHandler.ListAuditLogs)

	// Admin management
	protected.Get("/admin/admins", adminHandler.ListAdmins)
	protected.Post("/admin/admins", adminHandler.CreateAdmin)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
