package usecase

import (
	"context"
	"time"

	"barbacoa-pos/internal/domain"

	"github.com/google/uuid"
)

// The usecase layer depends on these interfaces, not on the hosted store.
// Range bounds are inclusive.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go

// SalesRepository reads paid orders and their items.
type SalesRepository interface {
	FetchSalesInRange(ctx context.Context, start, end time.Time) ([]domain.SaleRecord, error)
	FetchOrderItems(ctx context.Context, orderIDs []uuid.UUID) ([]domain.OrderItem, error)
}

// OrderRepository persists a paid order together with its items and its tip
// in a single transaction.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
}

// ProductRepository reads and maintains the product catalog.
// UpdateProduct returns domain.ErrNotFound when id does not exist.
type ProductRepository interface {
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	FetchProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, id int64, changes domain.ProductChanges) (*domain.Product, error)
}

// WaiterRepository reads and maintains the waitstaff.
// UpdateWaiter returns domain.ErrNotFound when id does not exist.
type WaiterRepository interface {
	ListWaiters(ctx context.Context, activeOnly bool) ([]domain.Waiter, error)
	CreateWaiter(ctx context.Context, waiter *domain.Waiter) error
	UpdateWaiter(ctx context.Context, id uuid.UUID, changes domain.WaiterChanges) (*domain.Waiter, error)
}

// ExpenseRepository reads and records expenses.
type ExpenseRepository interface {
	FetchExpensesInRange(ctx context.Context, start, end time.Time) ([]domain.ExpenseRecord, error)
	CreateExpense(ctx context.Context, expense *domain.ExpenseRecord) error
}

// TipRepository reads and records tips.
type TipRepository interface {
	FetchTipsInRange(ctx context.Context, start, end time.Time) ([]domain.TipRecord, error)
	CreateTip(ctx context.Context, tip *domain.TipRecord) error
}

// ClosingRepository stores at most one cash closing per calendar date.
// FetchExistingClosing returns nil, nil when the date has no closing.
type ClosingRepository interface {
	FetchExistingClosing(ctx context.Context, date time.Time) (*domain.CashClosing, error)
	UpsertClosing(ctx context.Context, closing domain.CashClosing) (*domain.CashClosing, error)
}
