package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tamaños válidos para Car.
const (
	CarSizeSmall  = "small"
	CarSizeMedium = "medium"
	CarSizeLarge  = "large"
)

// Car representa un vehículo del catálogo de alquiler.
type Car struct {
	ID                int64
	Name              string
	Price             decimal.Decimal // precio de alquiler por día
	Size              string          // small, medium, large
	Image             string
	IsCurrentlyRented bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
