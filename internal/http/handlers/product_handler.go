package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/takeam/admin-backend/internal/config"
	"github.com/takeam/admin-backend/internal/http/dto"
	"github.com/takeam/admin-backend/internal/services"
	"go.uber.org/zap"
)

type ProductHandler struct {
	productService *services.ProductService
	cfg            *config.Config
	log            *zap.Logger
}

func NewProductHandler(productService *services.ProductService, cfg *config.Config, log *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, cfg: cfg, log: log}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	product, err := h.productService.CreateProduct(c.Context(), services.CreateProductInput{
		Name:            req.Name,
		Grade:           req.Grade,
		AvailableWeight: req.AvailableWeight,
		PricePerKg:      req.PricePerKg,
		Location:        req.Location,
		Description:     req.Description,
		ImageURLs:       req.Images,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: product})
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	_, limit, offset := parsePagination(c, h.cfg)

	products, err := h.productService.ListProducts(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list products failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: products})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product id"})
	}

	product, err := h.productService.GetProduct(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product id"})
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	product, err := h.productService.UpdateProduct(c.Context(), id, services.UpdateProductInput{
		Name:            req.Name,
		Grade:           req.Grade,
		AvailableWeight: req.AvailableWeight,
		PricePerKg:      req.PricePerKg,
		Location:        req.Location,
		Description:     req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: product})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product id"})
	}

	if err := h.productService.DeleteProduct(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
