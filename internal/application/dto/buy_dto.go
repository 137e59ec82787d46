package dto

import "time"

// CreateBuyRequest entrada para registrar una compra (entrada de stock).
type CreateBuyRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gt=0"`
	Supplier  string    `json:"supplier" validate:"required"`
	EntryDate time.Time `json:"entry_date"`
}

// UpdateBuyRequest entrada para editar una compra. Cambiar ProductID mueve el
// movimiento de stock al nuevo producto (se revierte en el anterior).
type UpdateBuyRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Supplier  string `json:"supplier" validate:"required"`
}

// BuyResponse salida de una compra.
type BuyResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int64     `json:"quantity"`
	Supplier    string    `json:"supplier"`
	EntryDate   time.Time `json:"entry_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BuyListResponse lista paginada de compras.
type BuyListResponse struct {
	Items []BuyResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
