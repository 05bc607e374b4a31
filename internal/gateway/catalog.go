package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbacoa-pos/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const productColumns = `id, nombre, categoria, precio, activo`

// ListProducts returns the catalog ordered by category then name.
func (r *PostgresRepository) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE activo OR NOT $1 ORDER BY categoria, nombre`
	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// FetchProducts returns the products with the given ids, active or not.
func (r *PostgresRepository) FetchProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = ANY($1::bigint[])`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// CreateProduct inserts a product and fills in its id.
func (r *PostgresRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO productos (nombre, categoria, precio, activo) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Name, p.Category, p.Price, p.Active).Scan(&p.ID)
}

// UpdateProduct sets the non-nil fields of c on product id.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, id int64, c domain.ProductChanges) (*domain.Product, error) {
	query := `UPDATE productos SET
	              nombre = COALESCE($2, nombre),
	              categoria = COALESCE($3, categoria),
	              precio = COALESCE($4, precio),
	              activo = COALESCE($5, activo)
	          WHERE id = $1 RETURNING ` + productColumns
	price := decimal.NullDecimal{}
	if c.Price != nil {
		price = decimal.NewNullDecimal(*c.Price)
	}

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id, nullString(c.Name), nullString(c.Category), price, nullBool(c.Active)).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Active); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListWaiters returns the waitstaff ordered by name.
func (r *PostgresRepository) ListWaiters(ctx context.Context, activeOnly bool) ([]domain.Waiter, error) {
	query := `SELECT id, nombre, activo FROM meseros WHERE activo OR NOT $1 ORDER BY nombre`
	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var waiters []domain.Waiter
	for rows.Next() {
		var w domain.Waiter
		if err := rows.Scan(&w.ID, &w.Name, &w.Active); err != nil {
			return nil, err
		}
		waiters = append(waiters, w)
	}
	return waiters, rows.Err()
}

// CreateWaiter inserts a waiter.
func (r *PostgresRepository) CreateWaiter(ctx context.Context, w *domain.Waiter) error {
	query := `INSERT INTO meseros (id, nombre, activo) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Name, w.Active)
	return err
}

// UpdateWaiter sets the non-nil fields of c on waiter id.
func (r *PostgresRepository) UpdateWaiter(ctx context.Context, id uuid.UUID, c domain.WaiterChanges) (*domain.Waiter, error) {
	query := `UPDATE meseros SET nombre = COALESCE($2, nombre), activo = COALESCE($3, activo)
	          WHERE id = $1 RETURNING id, nombre, activo`

	var w domain.Waiter
	err := r.db.QueryRowContext(ctx, query, id, nullString(c.Name), nullBool(c.Active)).Scan(&w.ID, &w.Name, &w.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("waiter %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
