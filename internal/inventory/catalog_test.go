package inventory

import (
	"math"
	"testing"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertRecord(t *testing.T, want, got model.InventoryRecord) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.True(t, want.UnitPrice.Equal(got.UnitPrice), "unit price: want %s, got %s", want.UnitPrice, got.UnitPrice)
}

func TestCatalog_Upsert(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		quantity int
		price    string
		wantErr  error
		want     model.InventoryRecord
	}{
		{
			name:     "new item",
			item:     "Stapler",
			quantity: 4,
			price:    "7.25",
			want:     model.InventoryRecord{Name: "Stapler", Quantity: 4, UnitPrice: price("7.25")},
		},
		{
			name:     "zero quantity is allowed",
			item:     "Stapler",
			quantity: 0,
			price:    "7.25",
			want:     model.InventoryRecord{Name: "Stapler", Quantity: 0, UnitPrice: price("7.25")},
		},
		{
			name:     "existing item accumulates and keeps price",
			item:     "Pen",
			quantity: 5,
			price:    "2.0",
			want:     model.InventoryRecord{Name: "Pen", Quantity: 15, UnitPrice: price("1.5")},
		},
		{
			name:     "negative quantity",
			item:     "Pen",
			quantity: -1,
			price:    "1.5",
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "addition past max int",
			item:     "Pen",
			quantity: math.MaxInt - 5,
			price:    "1.5",
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative price on new item",
			item:     "Eraser",
			quantity: 1,
			price:    "-0.5",
			wantErr:  ErrInvalidPrice,
		},
		{
			name:     "blank name",
			item:     "   ",
			quantity: 1,
			price:    "1",
			wantErr:  ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog()
			_, err := c.Upsert("Pen", 10, price("1.5"))
			require.NoError(t, err)

			got, err := c.Upsert(tt.item, tt.quantity, price(tt.price))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				qty, qerr := c.Quantity("Pen")
				require.NoError(t, qerr)
				assert.Equal(t, 10, qty, "failed upsert must not mutate")
				assert.Equal(t, 1, c.Len())
				return
			}
			require.NoError(t, err)
			assertRecord(t, tt.want, got)
		})
	}
}

func TestCatalog_UpsertAtMaxQuantity(t *testing.T) {
	c := NewCatalog()

	_, err := c.Upsert("X", math.MaxInt, price("1"))
	require.NoError(t, err)

	_, err = c.Upsert("X", 1, price("1"))
	require.ErrorIs(t, err, ErrInvalidQuantity)

	qty, err := c.Quantity("X")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, qty)

	got, err := c.Upsert("X", 0, price("1"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got.Quantity)
}

func TestCatalog_UpsertKeepsOriginalPrice(t *testing.T) {
	c := NewCatalog()

	_, err := c.Upsert("X", 5, price("1.0"))
	require.NoError(t, err)
	got, err := c.Upsert("X", 3, price("9.0"))
	require.NoError(t, err)

	assertRecord(t, model.InventoryRecord{Name: "X", Quantity: 8, UnitPrice: price("1.0")}, got)
}

func TestCatalog_SetQuantity(t *testing.T) {
	c := NewCatalog()
	_, err := c.Upsert("Pen", 10, price("1.5"))
	require.NoError(t, err)

	got, err := c.SetQuantity("Pen", 3)
	require.NoError(t, err)
	assertRecord(t, model.InventoryRecord{Name: "Pen", Quantity: 3, UnitPrice: price("1.5")}, got)

	got, err = c.SetQuantity("Pen", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Quantity)

	_, err = c.SetQuantity("Pencil", 1)
	require.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, 1, c.Len())

	_, err = c.SetQuantity("Pen", -2)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	qty, err := c.Quantity("Pen")
	require.NoError(t, err)
	assert.Equal(t, 42, qty)
}

func TestCatalog_Remove(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"A", "X", "B"} {
		_, err := c.Upsert(name, 1, price("1"))
		require.NoError(t, err)
	}

	require.NoError(t, c.Remove("X"))

	_, err := c.Quantity("X")
	require.ErrorIs(t, err, ErrItemNotFound)
	for _, record := range c.List() {
		assert.NotEqual(t, "X", record.Name)
	}
	assert.Equal(t, 2, c.Len())

	require.ErrorIs(t, c.Remove("X"), ErrItemNotFound)
}

func TestCatalog_ListOrder(t *testing.T) {
	c := NewCatalog()
	assert.NotNil(t, c.List())
	assert.Empty(t, c.List())

	for _, name := range []string{"Pen", "Paper", "Ink"} {
		_, err := c.Upsert(name, 1, price("1"))
		require.NoError(t, err)
	}
	_, err := c.Upsert("Pen", 2, price("1"))
	require.NoError(t, err)

	names := func() []string {
		var out []string
		for _, r := range c.List() {
			out = append(out, r.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Pen", "Paper", "Ink"}, names())

	require.NoError(t, c.Remove("Pen"))
	_, err = c.Upsert("Pen", 1, price("3"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Paper", "Ink", "Pen"}, names())
}

func TestCatalog_ListIsSnapshot(t *testing.T) {
	c := NewCatalog()
	_, err := c.Upsert("Pen", 10, price("1.5"))
	require.NoError(t, err)

	records := c.List()
	records[0].Quantity = 999

	qty, err := c.Quantity("Pen")
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestCatalog_Scenario(t *testing.T) {
	c := NewCatalog()

	got, err := c.Upsert("Pen", 10, price("1.5"))
	require.NoError(t, err)
	assertRecord(t, model.InventoryRecord{Name: "Pen", Quantity: 10, UnitPrice: price("1.5")}, got)

	got, err = c.Upsert("Pen", 5, price("2.0"))
	require.NoError(t, err)
	assertRecord(t, model.InventoryRecord{Name: "Pen", Quantity: 15, UnitPrice: price("1.5")}, got)

	got, err = c.SetQuantity("Pen", 3)
	require.NoError(t, err)
	assertRecord(t, model.InventoryRecord{Name: "Pen", Quantity: 3, UnitPrice: price("1.5")}, got)

	require.NoError(t, c.Remove("Pen"))
	_, err = c.Quantity("Pen")
	require.ErrorIs(t, err, ErrItemNotFound)
}
