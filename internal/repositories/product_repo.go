package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/takeam/admin-backend/internal/models"
)

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, product_name, grade, available_weight, price_per_kg, status, location, description, trader_id, grading_id, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.ProductName, &p.Grade, &p.AvailableWeight, &p.PricePerKg, &p.Status,
		&p.Location, &p.Description, &p.TraderID, &p.GradingID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO products (product_name, grade, available_weight, price_per_kg, status, location, description, trader_id, grading_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, p.ProductName, p.Grade, p.AvailableWeight, p.PricePerKg, p.Status, p.Location, p.Description, p.TraderID, p.GradingID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	images, err := r.getImages(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *models.Product) error {
	return r.pool.QueryRow(ctx, `
		UPDATE products
		SET product_name = $1, grade = $2, available_weight = $3, price_per_kg = $4,
		    status = $5, location = $6, description = $7, updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`, p.ProductName, p.Grade, p.AvailableWeight, p.PricePerKg, p.Status, p.Location, p.Description, p.ID,
	).Scan(&p.UpdatedAt)
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *ProductRepo) AddImage(ctx context.Context, img *models.ProductImage) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO product_images (product_id, image_url, public_id)
		VALUES ($1, $2, $3) RETURNING id
	`, img.ProductID, img.ImageURL, img.PublicID).Scan(&img.ID)
}

func (r *ProductRepo) getImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, image_url, public_id FROM product_images WHERE product_id = $1
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.PublicID); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
