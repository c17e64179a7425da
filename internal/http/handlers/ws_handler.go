package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/auth"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/events"
	"github.com/takeam/admin-backend/internal/models"
	"go.uber.org/zap"
)

// WSHub fans out admin events to every connected dashboard session.
type WSHub struct {
	cfg         *config.Config
	subscriber  events.Subscriber
	log         *zap.Logger
	mu          sync.RWMutex
	connections map[uuid.UUID][]*websocket.Conn
}

func NewWSHub(cfg *config.Config, subscriber events.Subscriber, log *zap.Logger) *WSHub {
	return &WSHub{
		cfg:         cfg,
		subscriber:  subscriber,
		log:         log,
		connections: make(map[uuid.UUID][]*websocket.Conn),
	}
}

func (h *WSHub) Start(ctx context.Context) {
	_ = h.subscriber.Subscribe(ctx, events.StreamAdmin, func(event events.Event) {
		h.broadcast(event)
	})
}

func (h *WSHub) broadcast(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}
	}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	// Extract token from query
	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}

	claims, err := auth.ParseJWT(h.cfg.JWTSecret, tokenStr)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}

	if claims.Role != models.RoleAdmin && claims.Role != models.RoleSuperAdmin {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"admin access required"}`))
		conn.Close()
		return
	}

	adminID := claims.AdminID

	// Register
	h.mu.Lock()
	h.connections[adminID] = append(h.connections[adminID], conn)
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		conns := h.connections[adminID]
		for i, c := range conns {
			if c == conn {
				h.connections[adminID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
		if len(h.connections[adminID]) == 0 {
			delete(h.connections, adminID)
		}
		h.mu.Unlock()
		conn.Close()
	}()

	// Read loop (keep alive / pings)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
