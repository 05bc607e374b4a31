package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the payment bucket an order was settled with.
// The values are the ones stored in the comandas.metodo_pago column.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "EFECTIVO"
	PaymentMethodCard     PaymentMethod = "TARJETA"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// PaymentMethods lists the known methods in report order.
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}

// ParsePaymentMethod returns the method matching raw exactly.
// The second result is false for empty or unrecognized strings.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return PaymentMethod(raw), true
	}
	return "", false
}

// SaleRecord represents one paid order (comanda) as fetched from the store.
// Total is nullable and CreatedAt is kept raw because upstream timestamps are
// not always well formed.
type SaleRecord struct {
	ID            uuid.UUID           `json:"id"`
	Waiter        string              `json:"mesero"`
	Total         decimal.NullDecimal `json:"total"`
	PaymentMethod string              `json:"metodo_pago"`
	CreatedAt     string              `json:"created_at"`
}

// OrderItem is a line of an order with the product name snapshotted at sale time.
type OrderItem struct {
	OrderID   uuid.UUID           `json:"comanda_id"`
	ProductID int64               `json:"producto_id"`
	Name      string              `json:"nombre_snapshot"`
	UnitPrice decimal.Decimal     `json:"precio_unitario"`
	Quantity  int                 `json:"cantidad"`
	Subtotal  decimal.NullDecimal `json:"subtotal"`
}

// ExpenseRecord is a cash-out entry (gasto).
type ExpenseRecord struct {
	ID            uuid.UUID           `json:"id"`
	Concept       string              `json:"concepto"`
	Category      string              `json:"categoria"`
	Amount        decimal.NullDecimal `json:"monto"`
	Note          *string             `json:"nota"`
	PaymentMethod string              `json:"metodo_pago"`
	CreatedAt     string              `json:"created_at"`
}

// TipRecord is a tip paid out to waitstaff (propina).
type TipRecord struct {
	ID         uuid.UUID           `json:"id"`
	Amount     decimal.NullDecimal `json:"monto"`
	WaiterID   uuid.NullUUID       `json:"mesero_id"`
	WaiterName *string             `json:"mesero_nombre_snapshot"`
	Source     string              `json:"fuente"`
	OrderID    uuid.NullUUID       `json:"comanda_id"`
	Date       string              `json:"fecha"`
}

// Tip sources.
const (
	TipSourceManual = "MANUAL"
	TipSourceOrder  = "COMANDA"
)
