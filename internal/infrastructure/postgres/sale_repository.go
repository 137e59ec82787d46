package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// NextSaleCode obtiene el siguiente consecutivo desde la secuencia sale_codes.
// La secuencia es del store y es atómica: sustituye el patrón "leer el máximo
// y sumar uno", que duplicaba códigos bajo creaciones concurrentes.
func (r *SaleRepo) NextSaleCode() (int64, error) {
	var code int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('sale_codes')`).Scan(&code)
	if err != nil {
		return 0, fmt.Errorf("next sale code: %w", err)
	}
	return code, nil
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sale_code, product_id, user_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleCode, sale.ProductID, sale.UserID, sale.Quantity, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, sale_code, product_id, user_id, quantity, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SaleCode, &s.ProductID, &s.UserID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Update actualiza una venta existente (el sale_code nunca cambia).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET product_id = $2, user_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.UserID, sale.Quantity, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List lista ventas con paginación, con nombres de producto y usuario vía JOIN.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.sale_code, s.product_id, p.product_name, s.user_id, u.name, s.quantity, s.created_at, s.updated_at
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.sale_code DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var productName, userName *string
		if err := rows.Scan(&s.ID, &s.SaleCode, &s.ProductID, &productName, &s.UserID, &userName, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if productName != nil {
			s.ProductName = *productName
		}
		if userName != nil {
			s.UserName = *userName
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID. Devuelve false si no existía.
func (r *SaleRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
