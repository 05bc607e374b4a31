package usecase

import (
	"context"
	"fmt"
	"time"

	"barbacoa-pos/internal/corte"
	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/timestamp"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// ClosingRequest is the input of the closing screen.
type ClosingRequest struct {
	Date         time.Time
	ReportedCash decimal.Decimal
	Notes        string
}

// CorteUseCase orchestrates the end-of-day cash closing.
type CorteUseCase struct {
	sales    SalesRepository
	expenses ExpenseRepository
	tips     TipRepository
	closings ClosingRepository
}

// NewCorteUseCase creates a new instance of the usecase.
func NewCorteUseCase(sales SalesRepository, expenses ExpenseRepository, tips TipRepository, closings ClosingRepository) *CorteUseCase {
	return &CorteUseCase{sales: sales, expenses: expenses, tips: tips, closings: closings}
}

// Preview computes the day totals and theoretical cash, and returns the
// closing already saved for that date if there is one.
func (uc *CorteUseCase) Preview(ctx context.Context, date time.Time) (*domain.ClosingPreview, error) {
	if date.IsZero() {
		return nil, domain.ErrMissingDate
	}

	day, err := uc.fetchDay(ctx, date)
	if err != nil {
		return nil, err
	}

	existing, err := uc.closings.FetchExistingClosing(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("could not fetch existing closing: %w", err)
	}

	totals := corte.ComputeTotals(day.sales, day.expenses, day.tips)
	return &domain.ClosingPreview{
		Date:            date.Format(time.DateOnly),
		Sales:           totals.Sales,
		TotalExpenses:   totals.TotalExpenses,
		TotalTips:       totals.TotalTips,
		NetAmount:       totals.NetAmount,
		TheoreticalCash: totals.TheoreticalCash,
		Existing:        existing,
	}, nil
}

// Close builds the closing of req.Date and saves it. A date that already has a
// closing is updated in place.
func (uc *CorteUseCase) Close(ctx context.Context, req ClosingRequest) (*domain.CashClosing, error) {
	if req.Date.IsZero() {
		return nil, domain.ErrMissingDate
	}
	if req.ReportedCash.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", domain.ErrNegativeCash, req.ReportedCash)
	}

	day, err := uc.fetchDay(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	record := corte.BuildClosingRecord(req.Date, day.sales, day.expenses, day.tips, req.ReportedCash, req.Notes)

	existing, err := uc.closings.FetchExistingClosing(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("could not fetch existing closing: %w", err)
	}
	if existing != nil {
		record.ID = existing.ID
		log.Infof("[Corte] Updating closing %s for %s", existing.ID, record.Date)
	} else {
		log.Infof("[Corte] Creating closing for %s", record.Date)
	}

	saved, err := uc.closings.UpsertClosing(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("could not save closing: %w", err)
	}

	log.Infof("[Corte] Closing %s saved: theoretical=%s reported=%s variance=%s",
		saved.Date, saved.TheoreticalCash, saved.ReportedCash, saved.CashVariance)
	return saved, nil
}

type dayRows struct {
	sales    []domain.SaleRecord
	expenses []domain.ExpenseRecord
	tips     []domain.TipRecord
}

func (uc *CorteUseCase) fetchDay(ctx context.Context, date time.Time) (*dayRows, error) {
	start, end := timestamp.DayRange(date)

	sales, err := uc.sales.FetchSalesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sales: %w", err)
	}
	expenses, err := uc.expenses.FetchExpensesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not fetch expenses: %w", err)
	}
	tips, err := uc.tips.FetchTipsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tips: %w", err)
	}

	log.Debugf("[Corte] %s: %d sales, %d expenses, %d tips", date.Format(time.DateOnly), len(sales), len(expenses), len(tips))
	return &dayRows{sales: sales, expenses: expenses, tips: tips}, nil
}
