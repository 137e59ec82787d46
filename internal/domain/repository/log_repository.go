package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// LogRepository define el puerto de persistencia para el log de actividad (append-only).
type LogRepository interface {
	Create(log *entity.Log) error
	List(limit, offset int) ([]*entity.Log, error)
}
