package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementación del puerto LogRepository sobre PostgreSQL.
// La tabla logs es append-only: solo INSERT y SELECT.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador del log de actividad.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create persiste una entrada del log.
func (r *LogRepo) Create(log *entity.Log) error {
	query := `
		INSERT INTO logs (id, action, method, info, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Action, log.Method, log.Info, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// List lista entradas del log, más recientes primero.
func (r *LogRepo) List(limit, offset int) ([]*entity.Log, error) {
	query := `
		SELECT id, action, method, info, created_at
		FROM logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Log
	for rows.Next() {
		var l entity.Log
		if err := rows.Scan(&l.ID, &l.Action, &l.Method, &l.Info, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
