package movement

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del movimiento y el
// ajuste de stock se confirman o revierten juntos: no existe estado intermedio
// con stock medio ajustado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		buyRepo repository.BuyRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
