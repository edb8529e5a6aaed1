package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InventoryRecord is one catalog entry.
type InventoryRecord struct {
	UnitPrice decimal.Decimal
	Name      string
	Quantity  int
}

// String renders the record the way the inventory listing prints it.
func (r InventoryRecord) String() string {
	return fmt.Sprintf("Item: %s, Quantity: %d, Price: %s", r.Name, r.Quantity, r.UnitPrice.String())
}

// Value returns quantity times unit price.
func (r InventoryRecord) Value() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}
