// Package corte computes the end-of-day cash reconciliation.
//
// It performs no validation: a negative reported cash or a negative
// theoretical cash is computed like any other value. Callers validate input
// and enforce one closing per date against the store.
package corte

import (
	"strings"
	"time"

	"barbacoa-pos/internal/aggregate"
	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/money"

	"github.com/shopspring/decimal"
)

// TheoreticalCash is the cash that should be in the drawer:
// cash sales minus expenses minus tips paid out.
func TheoreticalCash(cashSales, totalExpenses, totalTips decimal.Decimal) decimal.Decimal {
	return money.Round2(cashSales.Sub(totalExpenses).Sub(totalTips))
}

// Variance is reported minus theoretical cash. Negative means a shortfall.
func Variance(reportedCash, theoreticalCash decimal.Decimal) decimal.Decimal {
	return money.Round2(reportedCash.Sub(theoreticalCash))
}

// Totals holds the day figures shared by the preview and the closing record.
type Totals struct {
	Sales           domain.MethodSummary
	TotalExpenses   decimal.Decimal
	TotalTips       decimal.Decimal
	NetAmount       decimal.Decimal
	TheoreticalCash decimal.Decimal
}

// ComputeTotals aggregates one day of rows.
func ComputeTotals(sales []domain.SaleRecord, expenses []domain.ExpenseRecord, tips []domain.TipRecord) Totals {
	summary := aggregate.SummarizeByMethod(sales)
	totalExpenses := aggregate.TotalExpenses(expenses)
	totalTips := aggregate.TotalTips(tips)

	return Totals{
		Sales:           summary,
		TotalExpenses:   totalExpenses,
		TotalTips:       totalTips,
		NetAmount:       money.Round2(summary.Total.Sub(totalExpenses)),
		TheoreticalCash: TheoreticalCash(summary.Cash, totalExpenses, totalTips),
	}
}

// BuildClosingRecord assembles the closing of date from its rows and the
// physically counted cash. Blank notes are dropped.
func BuildClosingRecord(
	date time.Time,
	sales []domain.SaleRecord,
	expenses []domain.ExpenseRecord,
	tips []domain.TipRecord,
	reportedCash decimal.Decimal,
	notes string,
) domain.CashClosing {
	totals := ComputeTotals(sales, expenses, tips)
	reported := money.Round2(reportedCash)

	closing := domain.CashClosing{
		Date:            date.Format(time.DateOnly),
		TotalSales:      totals.Sales.Total,
		TotalExpenses:   totals.TotalExpenses,
		NetAmount:       totals.NetAmount,
		ReportedCash:    reported,
		TheoreticalCash: totals.TheoreticalCash,
		CashVariance:    Variance(reported, totals.TheoreticalCash),
	}
	if n := strings.TrimSpace(notes); n != "" {
		closing.Notes = &n
	}
	return closing
}
