package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/auth"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/models"
	"go.uber.org/zap"
)

const (
	CtxAdminID    = "admin_id"
	CtxAdminEmail = "admin_email"
	CtxAdminRole  = "admin_role"
)

func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxAdminID, claims.AdminID)
		c.Locals(CtxAdminEmail, claims.Email)
		c.Locals(CtxAdminRole, claims.Role)

		return c.Next()
	}
}

func GetAdminID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxAdminID).(uuid.UUID)
	return id
}

func GetAdminEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(CtxAdminEmail).(string)
	return email
}

func GetAdminRole(c *fiber.Ctx) string {
	role, _ := c.Locals(CtxAdminRole).(string)
	return role
}

// AdminMiddleware rejects tokens that do not carry an admin role.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetAdminRole(c)
		if role != models.RoleAdmin && role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
