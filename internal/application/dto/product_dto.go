package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductCode string          `json:"product_code" validate:"required,min=1,max=100"`
	ProductName string          `json:"product_name" validate:"required,min=1,max=200"`
	Stock       int64           `json:"stock"`
	EntryDate   time.Time       `json:"entry_date"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	CategoryID  string          `json:"category_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Stock puede editarse directamente aquí; esa edición NO pasa por la
// reconciliación de movimientos (es un ajuste manual del inventario).
type UpdateProductRequest struct {
	ProductCode *string          `json:"product_code"`
	ProductName *string          `json:"product_name"`
	Stock       *int64           `json:"stock"`
	EntryDate   *time.Time       `json:"entry_date"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
	CategoryID  *string          `json:"category_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Stock       int64           `json:"stock"`
	EntryDate   time.Time       `json:"entry_date"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
