package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	List(limit, offset int) ([]*entity.Sale, error)
	Delete(id string) (bool, error)
	// NextSaleCode devuelve el siguiente consecutivo de venta desde la secuencia
	// del store. Atómico: dos creaciones concurrentes nunca reciben el mismo código.
	NextSaleCode() (int64, error)
}
