package models

import (
	"time"

	"github.com/google/uuid"
)

// Product statuses
const (
	ProductStatusAvailable  = "AVAILABLE"
	ProductStatusLowStock   = "LOW_STOCK"
	ProductStatusOutOfStock = "OUT_OF_STOCK"
	ProductStatusReserved   = "RESERVED"
)

// Produce grades
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
)

var AllGrades = []string{GradeA, GradeB, GradeC, GradeD}

func IsValidGrade(g string) bool {
	for _, grade := range AllGrades {
		if grade == g {
			return true
		}
	}
	return false
}

type Product struct {
	ID              uuid.UUID      `json:"id"`
	ProductName     string         `json:"product_name"`
	Grade           string         `json:"grade"`
	AvailableWeight float64        `json:"available_weight"` // kg
	PricePerKg      float64        `json:"price_per_kg"`
	Status          string         `json:"status"`
	Location        *string        `json:"location,omitempty"`
	Description     *string        `json:"description,omitempty"`
	TraderID        *uuid.UUID     `json:"trader_id,omitempty"`
	GradingID       *uuid.UUID     `json:"grading_id,omitempty"`
	Images          []ProductImage `json:"images,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	PublicID  string    `json:"public_id"`
}

// StatusForWeight derives the stock status from remaining weight.
func StatusForWeight(weightKg float64) string {
	switch {
	case weightKg <= 0:
		return ProductStatusOutOfStock
	case weightKg < 10:
		return ProductStatusLowStock
	default:
		return ProductStatusAvailable
	}
}
