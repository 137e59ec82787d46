package dto

import "time"

// CreateSaleRequest entrada para registrar una venta (salida de stock).
// El código de venta lo asigna el store; no viene en el request.
type CreateSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// UpdateSaleRequest entrada para editar una venta. Cambiar ProductID reconcilia
// el stock de ambos productos, igual que en compras.
type UpdateSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string    `json:"id"`
	SaleCode    int64     `json:"sale_code"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
