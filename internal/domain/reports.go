package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownLabel groups rows with no product or waiter name.
const UnknownLabel = "UNKNOWN"

// MethodSummary holds sales totals bucketed by payment method.
// Total also includes rows whose method was empty or unrecognized.
type MethodSummary struct {
	Cash     decimal.Decimal `json:"EFECTIVO"`
	Card     decimal.Decimal `json:"TARJETA"`
	Transfer decimal.Decimal `json:"TRANSFER"`
	Total    decimal.Decimal `json:"total"`
}

// Bucket returns the total for a known method.
func (s MethodSummary) Bucket(m PaymentMethod) decimal.Decimal {
	switch m {
	case PaymentMethodCash:
		return s.Cash
	case PaymentMethodCard:
		return s.Card
	case PaymentMethodTransfer:
		return s.Transfer
	}
	return decimal.Zero
}

// ProductSales is one row of the top products report.
type ProductSales struct {
	Product       string          `json:"producto"`
	TotalQuantity int             `json:"cantidad_total"`
	TotalSubtotal decimal.Decimal `json:"subtotal_total"`
}

// HourlySales is one hour-of-day bucket.
type HourlySales struct {
	Hour  int             `json:"hora"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"num_comandas"`
}

// DailySales is the sales total of one calendar date (YYYY-MM-DD).
type DailySales struct {
	Date  string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

// WaiterSales is the sales total attributed to one waiter.
type WaiterSales struct {
	Waiter string          `json:"mesero"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"num_comandas"`
}

// WaiterTips is the tip total paid to one waiter.
type WaiterTips struct {
	Waiter string          `json:"mesero"`
	Total  decimal.Decimal `json:"total_propinas"`
	Count  int             `json:"num_propinas"`
}

// SalesReport is the top-level structure of a range report.
type SalesReport struct {
	Start       string         `json:"fecha_inicio"`
	End         string         `json:"fecha_fin"`
	Methods     MethodSummary  `json:"ventas_por_metodo"`
	TopProducts []ProductSales `json:"top_productos"`
	Daily       []DailySales   `json:"ventas_por_dia"`
	Waiters     []WaiterSales  `json:"ventas_por_mesero"`
}

// CashClosing is the end-of-day reconciliation (corte) of one calendar date.
// TheoreticalCash is cash sales minus expenses minus tips; CashVariance is
// ReportedCash minus TheoreticalCash.
type CashClosing struct {
	ID              uuid.UUID       `json:"id"`
	Date            string          `json:"fecha"`
	TotalSales      decimal.Decimal `json:"total_ventas"`
	TotalExpenses   decimal.Decimal `json:"total_gastos"`
	NetAmount       decimal.Decimal `json:"neto"`
	ReportedCash    decimal.Decimal `json:"efectivo_reportado"`
	TheoreticalCash decimal.Decimal `json:"efectivo_teorico"`
	CashVariance    decimal.Decimal `json:"diferencia_efectivo"`
	Notes           *string         `json:"notas"`
}

// ClosingPreview is what the closing screen shows before cash is counted.
type ClosingPreview struct {
	Date            string          `json:"fecha"`
	Sales           MethodSummary   `json:"ventas"`
	TotalExpenses   decimal.Decimal `json:"total_gastos"`
	TotalTips       decimal.Decimal `json:"total_propinas"`
	NetAmount       decimal.Decimal `json:"neto"`
	TheoreticalCash decimal.Decimal `json:"efectivo_teorico"`
	Existing        *CashClosing    `json:"corte_existente"`
}
