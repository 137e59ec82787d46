package movement

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// applyStockDelta aplica el delta de stock de un movimiento con el incremento
// atómico del repositorio (stock = stock + delta). Se usa la misma primitiva
// para compras y ventas; el stock puede quedar negativo, el sistema no lo
// impide. Producto inexistente se reporta como ErrProductNotFound.
func applyStockDelta(productRepo repository.ProductRepository, productID string, delta int64) error {
	ok, err := productRepo.AdjustStock(productID, delta)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotFound
	}
	return nil
}
