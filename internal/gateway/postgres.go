package gateway

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"barbacoa-pos/internal/domain"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// PostgresRepository implements the usecase repositories on a Postgres
// database with the productos, meseros, comandas, comanda_items, gastos,
// propinas and cierres_caja tables.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository wraps an open database handle.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres opens and pings a lib/pq connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the tables if they do not exist.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Info("[Postgres] Schema applied")
	return nil
}

// Ping reports whether the database is reachable.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Timestamps are selected as their JSON text form so callers see the same
// ISO 8601 strings the hosted API returns.

// FetchSalesInRange returns the orders created between start and end inclusive.
func (r *PostgresRepository) FetchSalesInRange(ctx context.Context, start, end time.Time) ([]domain.SaleRecord, error) {
	query := `SELECT id, COALESCE(mesero, ''), total, COALESCE(metodo_pago, ''), COALESCE(to_json(created_at)#>>'{}', '')
	          FROM comandas WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.SaleRecord
	for rows.Next() {
		var s domain.SaleRecord
		if err := rows.Scan(&s.ID, &s.Waiter, &s.Total, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// FetchOrderItems returns the items of the given orders.
func (r *PostgresRepository) FetchOrderItems(ctx context.Context, orderIDs []uuid.UUID) ([]domain.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}

	query := `SELECT comanda_id, COALESCE(producto_id, 0), COALESCE(nombre_snapshot, ''), precio_unitario, cantidad, subtotal
	          FROM comanda_items WHERE comanda_id = ANY($1::uuid[])`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity, &it.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// CreateOrder inserts the order, its items and its tip in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO comandas (id, mesero, metodo_pago, total, recibido, cambio, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query,
		order.ID, order.Waiter, string(order.PaymentMethod), order.Total, order.Received, order.Change, order.Status,
	); err != nil {
		return fmt.Errorf("insert comanda: %w", err)
	}

	itemQuery := `INSERT INTO comanda_items (comanda_id, producto_id, nombre_snapshot, precio_unitario, cantidad, subtotal)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			order.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert comanda item %q: %w", it.Name, err)
		}
	}

	if order.Tip != nil {
		if err := insertTip(ctx, tx, order.Tip); err != nil {
			return fmt.Errorf("insert propina: %w", err)
		}
	}
	return tx.Commit()
}

// FetchExpensesInRange returns the expenses created between start and end inclusive.
func (r *PostgresRepository) FetchExpensesInRange(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error) {
	query := `SELECT id, COALESCE(concepto, ''), COALESCE(categoria, ''), monto, nota, COALESCE(metodo_pago, ''), COALESCE(to_json(created_at)#>>'{}', '')
	          FROM gastos WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.ExpenseRecord
	for rows.Next() {
		var e domain.ExpenseRecord
		if err := rows.Scan(&e.ID, &e.Concept, &e.Category, &e.Amount, &e.Note, &e.PaymentMethod, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateExpense inserts an expense and fills in its creation timestamp.
func (r *PostgresRepository) CreateExpense(ctx context.Context, e *domain.ExpenseRecord) error {
	query := `INSERT INTO gastos (id, concepto, categoria, monto, nota, metodo_pago)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING to_json(created_at)#>>'{}'`
	return r.db.QueryRowContext(ctx, query, e.ID, e.Concept, e.Category, e.Amount, e.Note, e.PaymentMethod).Scan(&e.CreatedAt)
}

// FetchTipsInRange returns the tips whose fecha falls between the dates of
// start and end inclusive.
func (r *PostgresRepository) FetchTipsInRange(ctx context.Context, start, end time.Time) ([]domain.TipRecord, error) {
	query := `SELECT id, monto, mesero_id, mesero_nombre_snapshot, COALESCE(fuente, ''), comanda_id, fecha::text
	          FROM propinas WHERE fecha >= $1::date AND fecha <= $2::date ORDER BY fecha`
	rows, err := r.db.QueryContext(ctx, query, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tips []domain.TipRecord
	for rows.Next() {
		var t domain.TipRecord
		if err := rows.Scan(&t.ID, &t.Amount, &t.WaiterID, &t.WaiterName, &t.Source, &t.OrderID, &t.Date); err != nil {
			return nil, err
		}
		tips = append(tips, t)
	}
	return tips, rows.Err()
}

// CreateTip inserts a tip.
func (r *PostgresRepository) CreateTip(ctx context.Context, t *domain.TipRecord) error {
	return insertTip(ctx, r.db, t)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertTip(ctx context.Context, db execer, t *domain.TipRecord) error {
	query := `INSERT INTO propinas (id, monto, mesero_id, mesero_nombre_snapshot, fuente, comanda_id, fecha)
	          VALUES ($1, $2, $3, $4, $5, $6, $7::date)`
	_, err := db.ExecContext(ctx, query, t.ID, t.Amount, t.WaiterID, t.WaiterName, t.Source, t.OrderID, t.Date)
	return err
}

const closingColumns = `id, fecha::text, total_ventas, total_gastos, neto, efectivo_reportado, efectivo_teorico, diferencia_efectivo, notas`

// FetchExistingClosing returns the closing of date, or nil when there is none.
func (r *PostgresRepository) FetchExistingClosing(ctx context.Context, date time.Time) (*domain.CashClosing, error) {
	query := `SELECT ` + closingColumns + ` FROM cierres_caja WHERE fecha = $1::date`
	c, err := scanClosing(r.db.QueryRowContext(ctx, query, date.Format(time.DateOnly)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpsertClosing writes the closing of c.Date in a single statement, replacing
// the amounts of a closing already saved for that date.
func (r *PostgresRepository) UpsertClosing(ctx context.Context, c domain.CashClosing) (*domain.CashClosing, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `INSERT INTO cierres_caja (id, fecha, total_ventas, total_gastos, neto, efectivo_reportado, efectivo_teorico, diferencia_efectivo, notas)
	          VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (fecha) DO UPDATE SET
	              total_ventas = EXCLUDED.total_ventas,
	              total_gastos = EXCLUDED.total_gastos,
	              neto = EXCLUDED.neto,
	              efectivo_reportado = EXCLUDED.efectivo_reportado,
	              efectivo_teorico = EXCLUDED.efectivo_teorico,
	              diferencia_efectivo = EXCLUDED.diferencia_efectivo,
	              notas = EXCLUDED.notas
	          RETURNING ` + closingColumns
	return scanClosing(r.db.QueryRowContext(ctx, query,
		id, c.Date, c.TotalSales, c.TotalExpenses, c.NetAmount, c.ReportedCash, c.TheoreticalCash, c.CashVariance, c.Notes,
	))
}

func scanClosing(row *sql.Row) (*domain.CashClosing, error) {
	var c domain.CashClosing
	if err := row.Scan(&c.ID, &c.Date, &c.TotalSales, &c.TotalExpenses, &c.NetAmount,
		&c.ReportedCash, &c.TheoreticalCash, &c.CashVariance, &c.Notes); err != nil {
		return nil, err
	}
	return &c, nil
}
