// Package inventory keeps an in-memory catalog of stock items keyed by name.
package inventory

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Catalog maps item names to their quantity and unit price.
// It is not safe for concurrent use.
type Catalog struct {
	items map[string]*model.InventoryRecord
	order []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[string]*model.InventoryRecord),
	}
}

// Upsert adds quantity units of name. A new item is created with unitPrice;
// an existing item keeps its original price and only its quantity grows.
func (c *Catalog) Upsert(name string, quantity int, unitPrice decimal.Decimal) (model.InventoryRecord, error) {
	if strings.TrimSpace(name) == "" {
		return model.InventoryRecord{}, ErrInvalidName
	}
	if quantity < 0 {
		return model.InventoryRecord{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if record, ok := c.items[name]; ok {
		if quantity > math.MaxInt-record.Quantity {
			return model.InventoryRecord{}, fmt.Errorf("%w: adding %d to %d overflows", ErrInvalidQuantity, quantity, record.Quantity)
		}
		record.Quantity += quantity
		return *record, nil
	}

	if unitPrice.IsNegative() {
		return model.InventoryRecord{}, fmt.Errorf("%w: %s", ErrInvalidPrice, unitPrice)
	}

	record := &model.InventoryRecord{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	c.items[name] = record
	c.order = append(c.order, name)

	return *record, nil
}

// SetQuantity overwrites the quantity of an existing item.
func (c *Catalog) SetQuantity(name string, quantity int) (model.InventoryRecord, error) {
	record, ok := c.items[name]
	if !ok {
		return model.InventoryRecord{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	if quantity < 0 {
		return model.InventoryRecord{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	record.Quantity = quantity
	return *record, nil
}

// Remove deletes an item.
func (c *Catalog) Remove(name string) error {
	if _, ok := c.items[name]; !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}

	delete(c.items, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	return nil
}

// List returns a copy of every record in the order items were first added.
func (c *Catalog) List() []model.InventoryRecord {
	records := make([]model.InventoryRecord, 0, len(c.order))
	for _, name := range c.order {
		records = append(records, *c.items[name])
	}
	return records
}

// Quantity returns the stock level of name.
func (c *Catalog) Quantity(name string) (int, error) {
	record, ok := c.items[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return record.Quantity, nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
