package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusPaid is the only status the register writes.
const OrderStatusPaid = "PAGADA"

// Order is a paid order ready to be persisted together with its items and
// its tip. Received and Change are only set for cash payments and Tip is nil
// when no tip was left.
type Order struct {
	ID            uuid.UUID           `json:"id"`
	Waiter        string              `json:"mesero"`
	PaymentMethod PaymentMethod       `json:"metodo_pago"`
	Total         decimal.Decimal     `json:"total"`
	Received      decimal.NullDecimal `json:"recibido"`
	Change        decimal.NullDecimal `json:"cambio"`
	Status        string              `json:"status"`
	Items         []OrderItem         `json:"items"`
	Tip           *TipRecord          `json:"propina,omitempty"`
}
