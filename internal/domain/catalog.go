package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a menu item (producto). Orders snapshot its name and price.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"nombre"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Active   bool            `json:"activo"`
}

// ProductChanges holds the fields of a product update. Nil fields are kept.
type ProductChanges struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Active   *bool
}

// Empty reports whether no field is set.
func (c ProductChanges) Empty() bool {
	return c.Name == nil && c.Category == nil && c.Price == nil && c.Active == nil
}

// Waiter is a member of the waitstaff (mesero).
type Waiter struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"nombre"`
	Active bool      `json:"activo"`
}

// WaiterChanges holds the fields of a waiter update. Nil fields are kept.
type WaiterChanges struct {
	Name   *string
	Active *bool
}

// Empty reports whether no field is set.
func (c WaiterChanges) Empty() bool {
	return c.Name == nil && c.Active == nil
}
