package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es el único agregado derivado que mantiene el sistema: se ajusta en
// cada mutación de Buy/Sale (ver application/movement) o por edición directa
// del producto, que NO pasa por reconciliación.
// TotalCost = Stock × CostPerUnit en la última escritura directa; la
// reconciliación de movimientos no lo recalcula.
type Product struct {
	ID          string
	ProductCode string
	ProductName string
	Stock       int64
	EntryDate   time.Time
	CostPerUnit decimal.Decimal
	TotalCost   decimal.Decimal
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
