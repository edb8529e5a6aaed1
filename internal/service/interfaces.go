// Package service defines the interfaces the menu loops consume.
package service

import (
	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// AccountLedger is the contract of a single-account ATM ledger.
type AccountLedger interface {
	Authenticate(candidate model.PIN) bool
	Balance() decimal.Decimal
	Credit(amount decimal.Decimal) (decimal.Decimal, error)
	Debit(amount decimal.Decimal) (decimal.Decimal, error)
	RotatePIN(current, next, confirm model.PIN) error
}

// InventoryCatalog is the contract of a name-keyed stock catalog.
type InventoryCatalog interface {
	Upsert(name string, quantity int, unitPrice decimal.Decimal) (model.InventoryRecord, error)
	SetQuantity(name string, quantity int) (model.InventoryRecord, error)
	Remove(name string) error
	List() []model.InventoryRecord
	Quantity(name string) (int, error)
	Len() int
}
