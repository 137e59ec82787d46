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

var _ repository.BuyRepository = (*BuyRepo)(nil)

// BuyRepo implementación del puerto BuyRepository sobre PostgreSQL (usable con pool o tx).
type BuyRepo struct {
	q Querier
}

// NewBuyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBuyRepository(q Querier) *BuyRepo {
	return &BuyRepo{q: q}
}

// Create persiste una nueva compra.
func (r *BuyRepo) Create(buy *entity.Buy) error {
	query := `
		INSERT INTO buys (id, product_id, quantity, supplier, entry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		buy.ID, buy.ProductID, buy.Quantity, buy.Supplier, buy.EntryDate, buy.CreatedAt, buy.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert buy: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *BuyRepo) GetByID(id string) (*entity.Buy, error) {
	query := `
		SELECT id, product_id, quantity, supplier, entry_date, created_at, updated_at
		FROM buys WHERE id = $1`
	var b entity.Buy
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProductID, &b.Quantity, &b.Supplier, &b.EntryDate, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buy: %w", err)
	}
	return &b, nil
}

// Update actualiza una compra existente.
func (r *BuyRepo) Update(buy *entity.Buy) error {
	query := `
		UPDATE buys SET product_id = $2, quantity = $3, supplier = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		buy.ID, buy.ProductID, buy.Quantity, buy.Supplier, buy.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update buy: %w", err)
	}
	return nil
}

// List lista compras con paginación, con el nombre del producto vía JOIN.
func (r *BuyRepo) List(limit, offset int) ([]*entity.Buy, error) {
	query := `
		SELECT b.id, b.product_id, p.product_name, b.quantity, b.supplier, b.entry_date, b.created_at, b.updated_at
		FROM buys b
		LEFT JOIN products p ON p.id = b.product_id
		ORDER BY b.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list buys: %w", err)
	}
	defer rows.Close()
	var list []*entity.Buy
	for rows.Next() {
		var b entity.Buy
		var productName *string
		if err := rows.Scan(&b.ID, &b.ProductID, &productName, &b.Quantity, &b.Supplier, &b.EntryDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan buy: %w", err)
		}
		if productName != nil {
			b.ProductName = *productName
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina una compra por ID. Devuelve false si no existía.
func (r *BuyRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM buys WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete buy: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
