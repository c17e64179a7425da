package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/takeam/admin-backend/internal/models"
	"github.com/takeam/admin-backend/internal/repositories"
	"go.uber.org/zap"
)

type ProductService struct {
	productRepo *repositories.ProductRepo
	log         *zap.Logger
}

func NewProductService(productRepo *repositories.ProductRepo, log *zap.Logger) *ProductService {
	return &ProductService{productRepo: productRepo, log: log}
}

type CreateProductInput struct {
	Name            string
	Grade           string
	AvailableWeight float64
	PricePerKg      float64
	Location        *string
	Description     *string
	ImageURLs       []string
}

func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if !models.IsValidGrade(input.Grade) {
		return nil, fmt.Errorf("invalid grade %q, must be one of: A, B, C, D", input.Grade)
	}
	if input.PricePerKg <= 0 {
		return nil, fmt.Errorf("price per kg must be positive")
	}

	product := &models.Product{
		ProductName:     input.Name,
		Grade:           input.Grade,
		AvailableWeight: input.AvailableWeight,
		PricePerKg:      input.PricePerKg,
		Status:          models.StatusForWeight(input.AvailableWeight),
		Location:        input.Location,
		Description:     input.Description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	for _, url := range input.ImageURLs {
		img := &models.ProductImage{ProductID: product.ID, ImageURL: url, PublicID: uuid.New().String()}
		if err := s.productRepo.AddImage(ctx, img); err != nil {
			s.log.Warn("product image insert failed", zap.String("product_id", product.ID.String()), zap.Error(err))
			continue
		}
		product.Images = append(product.Images, *img)
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return p, err
}

func (s *ProductService) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

type UpdateProductInput struct {
	Name            *string
	Grade           *string
	AvailableWeight *float64
	PricePerKg      *float64
	Location        *string
	Description     *string
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		product.ProductName = *input.Name
	}
	if input.Grade != nil {
		if !models.IsValidGrade(*input.Grade) {
			return nil, fmt.Errorf("invalid grade %q, must be one of: A, B, C, D", *input.Grade)
		}
		product.Grade = *input.Grade
	}
	if input.AvailableWeight != nil {
		product.AvailableWeight = *input.AvailableWeight
		product.Status = models.StatusForWeight(*input.AvailableWeight)
	}
	if input.PricePerKg != nil {
		product.PricePerKg = *input.PricePerKg
	}
	if input.Location != nil {
		product.Location = input.Location
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
