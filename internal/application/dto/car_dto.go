package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCarRequest entrada para crear un carro.
type CreateCarRequest struct {
	Name  string          `json:"name" validate:"required,max=200"`
	Price decimal.Decimal `json:"price" validate:"required"`
	Size  string          `json:"size" validate:"required,oneof=small medium large"`
	Image string          `json:"image" validate:"omitempty,max=500"`
}

// UpdateCarRequest entrada para actualizar un carro (campos opcionales).
type UpdateCarRequest struct {
	Name              *string          `json:"name" validate:"omitempty,max=200"`
	Price             *decimal.Decimal `json:"price"`
	Size              *string          `json:"size" validate:"omitempty,oneof=small medium large"`
	Image             *string          `json:"image" validate:"omitempty,max=500"`
	IsCurrentlyRented *bool            `json:"isCurrentlyRented"`
}

// CarResponse salida de un carro.
type CarResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Size              string          `json:"size"`
	Image             string          `json:"image"`
	IsCurrentlyRented bool            `json:"isCurrentlyRented"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// CarListResponse salida de listado con metadatos de paginación.
type CarListResponse struct {
	Cars []CarResponse      `json:"cars"`
	Meta PaginationResponse `json:"meta"`
}
