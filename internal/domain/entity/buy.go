package entity

import "time"

// Buy representa una compra a proveedor: movimiento que AUMENTA el stock del producto.
type Buy struct {
	ID        string
	ProductID string
	Quantity  int64
	Supplier  string
	EntryDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProductName viene del JOIN en listados (equivalente al populate del cliente).
	ProductName string
}
