package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// BuyRepository define el puerto de persistencia para Buy (DIP).
type BuyRepository interface {
	Create(buy *entity.Buy) error
	GetByID(id string) (*entity.Buy, error)
	Update(buy *entity.Buy) error
	List(limit, offset int) ([]*entity.Buy, error)
	Delete(id string) (bool, error)
}
