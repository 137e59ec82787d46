package entity

import "time"

// Sale representa una venta: movimiento que DISMINUYE el stock del producto.
// SaleCode es un consecutivo único asignado por la secuencia del store al crear.
type Sale struct {
	ID        string
	SaleCode  int64
	ProductID string
	UserID    string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProductName y UserName vienen del JOIN en listados.
	ProductName string
	UserName    string
}
