package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/money"
	"barbacoa-pos/internal/timestamp"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// DefaultWaiter is stored when an order is placed without a waiter name.
const DefaultWaiter = "Sin nombre"

// OrderLine is a quantity of a catalog product. The name and unit price are
// taken from the catalog when the order is placed.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// OrderInput is a paid order as captured at the register.
// Received is only read for cash payments.
type OrderInput struct {
	Waiter   string
	Method   string
	Lines    []OrderLine
	Received *decimal.Decimal
	Tip      decimal.Decimal
}

// ExpenseInput is a cash-out entry. An empty Method means cash.
type ExpenseInput struct {
	Concept  string
	Category string
	Amount   decimal.Decimal
	Note     string
	Method   string
}

// TipInput is a tip paid out to a waiter. An empty Source means MANUAL.
type TipInput struct {
	Amount     decimal.Decimal
	WaiterID   uuid.NullUUID
	WaiterName string
	Source     string
	OrderID    uuid.NullUUID
	Date       time.Time
}

// LedgerUseCase writes the rows the reports and closings are computed from.
type LedgerUseCase struct {
	orders   OrderRepository
	products ProductRepository
	expenses ExpenseRepository
	tips     TipRepository
	now      func() time.Time
}

// NewLedgerUseCase creates a new instance of the usecase.
func NewLedgerUseCase(orders OrderRepository, products ProductRepository, expenses ExpenseRepository, tips TipRepository) *LedgerUseCase {
	return &LedgerUseCase{orders: orders, products: products, expenses: expenses, tips: tips, now: time.Now}
}

// WithClock replaces the clock used to date tips.
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// PlaceOrder validates and persists a paid order priced from the catalog.
// A positive tip is stored with the order, with source COMANDA.
func (uc *LedgerUseCase) PlaceOrder(ctx context.Context, in OrderInput) (*domain.Order, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	method, ok := domain.ParsePaymentMethod(strings.ToUpper(strings.TrimSpace(in.Method)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, in.Method)
	}
	if in.Tip.IsNegative() {
		return nil, fmt.Errorf("%w: tip must be >= 0", domain.ErrInvalidAmount)
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity of product %d", domain.ErrInvalidAmount, l.ProductID)
		}
	}

	catalog, err := uc.lookupProducts(ctx, in.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.New(),
		Waiter:        strings.TrimSpace(in.Waiter),
		PaymentMethod: method,
		Status:        domain.OrderStatusPaid,
		Items:         make([]domain.OrderItem, 0, len(in.Lines)),
	}
	if order.Waiter == "" {
		order.Waiter = DefaultWaiter
	}

	total := decimal.Zero
	for _, l := range in.Lines {
		p := catalog[l.ProductID]
		subtotal := money.Round2(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		total = total.Add(subtotal)
		order.Items = append(order.Items, domain.OrderItem{
			OrderID:   order.ID,
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
			Subtotal:  money.Null(subtotal),
		})
	}
	order.Total = money.Round2(total)

	if method == domain.PaymentMethodCash {
		if in.Received == nil {
			return nil, fmt.Errorf("%w: total %s", domain.ErrInsufficientCash, order.Total)
		}
		received := money.Round2(*in.Received)
		if received.LessThan(order.Total) {
			return nil, fmt.Errorf("%w: total %s", domain.ErrInsufficientCash, order.Total)
		}
		order.Received = money.Null(received)
		order.Change = money.Null(received.Sub(order.Total))
	}

	if in.Tip.IsPositive() {
		order.Tip = uc.newTip(TipInput{
			Amount:     in.Tip,
			WaiterName: order.Waiter,
			Source:     domain.TipSourceOrder,
			OrderID:    uuid.NullUUID{UUID: order.ID, Valid: true},
		})
	}

	if err := uc.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("could not create order: %w", err)
	}
	log.Infof("[Ledger] Order %s placed: %s %s by %s", order.ID, order.PaymentMethod, order.Total, order.Waiter)
	return order, nil
}

// lookupProducts returns the active catalog products referenced by lines.
func (uc *LedgerUseCase) lookupProducts(ctx context.Context, lines []OrderLine) (map[int64]domain.Product, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}

	products, err := uc.products.FetchProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	catalog := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		if p.Active {
			catalog[p.ID] = p
		}
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownProduct, id)
		}
	}
	return catalog, nil
}

// RecordExpense validates and persists an expense.
func (uc *LedgerUseCase) RecordExpense(ctx context.Context, in ExpenseInput) (*domain.ExpenseRecord, error) {
	concept := strings.TrimSpace(in.Concept)
	category := strings.TrimSpace(in.Category)
	if concept == "" {
		return nil, fmt.Errorf("%w: concept", domain.ErrMissingField)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category", domain.ErrMissingField)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense must be > 0", domain.ErrInvalidAmount)
	}

	method := domain.PaymentMethodCash
	if raw := strings.ToUpper(strings.TrimSpace(in.Method)); raw != "" {
		m, ok := domain.ParsePaymentMethod(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, in.Method)
		}
		method = m
	}

	expense := &domain.ExpenseRecord{
		ID:            uuid.New(),
		Concept:       concept,
		Category:      category,
		Amount:        money.Null(money.Round2(in.Amount)),
		PaymentMethod: string(method),
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		expense.Note = &note
	}

	if err := uc.expenses.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("could not create expense: %w", err)
	}
	log.Infof("[Ledger] Expense %s recorded: %s %s", expense.ID, expense.Concept, expense.Amount.Decimal)
	return expense, nil
}

// DailyExpenses returns the expenses created on the UTC day of date.
func (uc *LedgerUseCase) DailyExpenses(ctx context.Context, date time.Time) ([]domain.ExpenseRecord, error) {
	if date.IsZero() {
		return nil, domain.ErrMissingDate
	}
	start, end := timestamp.DayRange(date)
	expenses, err := uc.expenses.FetchExpensesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not fetch expenses: %w", err)
	}
	return expenses, nil
}

// RecordTip validates and persists a tip. A zero Date means the current UTC day.
func (uc *LedgerUseCase) RecordTip(ctx context.Context, in TipInput) (*domain.TipRecord, error) {
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: tip must be >= 0", domain.ErrInvalidAmount)
	}

	tip := uc.newTip(in)
	if err := uc.tips.CreateTip(ctx, tip); err != nil {
		return nil, fmt.Errorf("could not create tip: %w", err)
	}
	log.Infof("[Ledger] Tip %s recorded: %s (%s)", tip.ID, tip.Amount.Decimal, tip.Source)
	return tip, nil
}

// newTip builds the tip row. Without an explicit Date the tip is dated by
// the UTC day, the same day a sale made now is bucketed in.
func (uc *LedgerUseCase) newTip(in TipInput) *domain.TipRecord {
	date := in.Date
	if date.IsZero() {
		date = uc.now().UTC()
	}
	source := strings.ToUpper(strings.TrimSpace(in.Source))
	if source == "" {
		source = domain.TipSourceManual
	}

	tip := &domain.TipRecord{
		ID:       uuid.New(),
		Amount:   money.Null(money.Round2(in.Amount)),
		WaiterID: in.WaiterID,
		Source:   source,
		OrderID:  in.OrderID,
		Date:     date.Format(time.DateOnly),
	}
	if name := strings.TrimSpace(in.WaiterName); name != "" {
		tip.WaiterName = &name
	}
	return tip
}
