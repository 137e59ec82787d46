package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock aplica un incremento atómico al stock (stock = stock + delta).
	// Devuelve false si el producto no existe. Es la única primitiva que usa la
	// reconciliación de movimientos, tanto para compras como para ventas.
	AdjustStock(id string, delta int64) (bool, error)
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) (bool, error)
}
