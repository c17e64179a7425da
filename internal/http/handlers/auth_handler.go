package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/takeam/admin-backend/internal/auth"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accountRepo *repositories.AccountRepo
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(accountRepo *repositories.AccountRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accountRepo: accountRepo, cfg: cfg, log: log}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email and password are required"})
	}

	admin, err := h.accountRepo.GetAdminByEmail(c.Context(), req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	if admin.Status != models.AccountStatusActive {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "account is " + admin.Status})
	}

	email := ""
	if admin.Email != nil {
		email = *admin.Email
	}
	token, err := auth.GenerateJWT(h.cfg.JWTSecret, admin.ID, email, admin.Role, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("jwt generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	if err := h.accountRepo.UpdateLastLogin(c.Context(), admin.ID); err != nil {
		h.log.Warn("last login update failed", zap.Error(err))
	}

	return c.JSON(dto.LoginResponse{Token: token, User: admin.Account})
}
