package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/inventory"
	"github.com/Veraticus/tally/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory menu options.
const (
	invAddItem     = "1"
	invUpdateStock = "2"
	invRemoveItem  = "3"
	invView        = "4"
	invCheckStock  = "5"
	invExit        = "6"
)

var inventoryOptions = []string{invAddItem, invUpdateStock, invRemoveItem, invView, invCheckStock, invExit}

// InventoryMenu is the interactive loop in front of an inventory catalog.
type InventoryMenu struct {
	catalog  service.InventoryCatalog
	prompter *Prompter
	logger   *slog.Logger
}

// NewInventoryMenu creates an inventory menu. A nil logger uses slog's default.
func NewInventoryMenu(catalog service.InventoryCatalog, prompter *Prompter, logger *slog.Logger) *InventoryMenu {
	if logger == nil {
		logger = slog.Default()
	}

	return &InventoryMenu{
		catalog:  catalog,
		prompter: prompter,
		logger:   logger.With("menu", "inventory", "session", uuid.NewString()),
	}
}

// Run serves the menu until Exit is chosen or input ends.
func (m *InventoryMenu) Run(ctx context.Context) error {
	ctx = common.WithLogger(ctx, m.logger)
	common.LogInfo(ctx, "Inventory session started", nil)

	for {
		if err := m.showMenu(); err != nil {
			return err
		}

		choice, err := m.prompter.Choice(ctx, "Enter your choice", inventoryOptions)
		if err != nil {
			return err
		}
		common.LogDebug(ctx, "Inventory option selected", common.Fields{"option": choice})

		switch choice {
		case invAddItem:
			err = m.addItem(ctx)
		case invUpdateStock:
			err = m.updateStock(ctx)
		case invRemoveItem:
			err = m.removeItem(ctx)
		case invView:
			err = m.viewInventory()
		case invCheckStock:
			err = m.checkStock(ctx)
		case invExit:
			common.LogInfo(ctx, "Inventory session ended", common.Fields{"items": m.catalog.Len()})
			return m.prompter.Say(FormatInfo("Exiting..."))
		}
		if err != nil {
			return err
		}
	}
}

func (m *InventoryMenu) showMenu() error {
	lines := []string{
		"",
		FormatTitle(BoxIcon, "Inventory Menu:"),
		"1. Add Item",
		"2. Update Stock",
		"3. Remove Item",
		"4. View Inventory",
		"5. Check Stock",
		"6. Exit",
	}
	for _, line := range lines {
		if err := m.prompter.Say(line); err != nil {
			return err
		}
	}
	return nil
}

func (m *InventoryMenu) addItem(ctx context.Context) error {
	name, err := m.prompter.Text(ctx, "Enter item name")
	if err != nil {
		return err
	}
	qty, err := m.prompter.Quantity(ctx, "Enter quantity")
	if err != nil {
		return err
	}
	price, err := m.prompter.Price(ctx, "Enter price")
	if err != nil {
		return err
	}

	record, err := m.catalog.Upsert(name, qty, price)
	if err != nil {
		common.LogError(ctx, err, "Add item failed", common.Fields{"item": name})
		return m.prompter.Say(FormatError(fmt.Sprintf("Could not add %s: %v", name, err)))
	}

	common.LogInfo(ctx, "Item added", common.Fields{"item": name, "added": qty, "quantity": record.Quantity})
	return m.prompter.Say(FormatSuccess(fmt.Sprintf("Added %d %s(s) to inventory.", qty, name)))
}

func (m *InventoryMenu) updateStock(ctx context.Context) error {
	name, err := m.prompter.Text(ctx, "Enter item name")
	if err != nil {
		return err
	}
	qty, err := m.prompter.Quantity(ctx, "Enter new quantity")
	if err != nil {
		return err
	}

	record, err := m.catalog.SetQuantity(name, qty)
	if err != nil {
		return m.reportMissing(ctx, name, err, "Item %s not found in inventory.")
	}

	common.LogInfo(ctx, "Stock updated", common.Fields{"item": name, "quantity": record.Quantity})
	return m.prompter.Say(FormatSuccess(fmt.Sprintf("Updated stock for %s. New quantity: %d", name, record.Quantity)))
}

func (m *InventoryMenu) removeItem(ctx context.Context) error {
	name, err := m.prompter.Text(ctx, "Enter item name")
	if err != nil {
		return err
	}

	if err := m.catalog.Remove(name); err != nil {
		return m.reportMissing(ctx, name, err, "Item %s not found in inventory.")
	}

	common.LogInfo(ctx, "Item removed", common.Fields{"item": name})
	return m.prompter.Say(FormatSuccess(fmt.Sprintf("Removed %s from inventory.", name)))
}

func (m *InventoryMenu) checkStock(ctx context.Context) error {
	name, err := m.prompter.Text(ctx, "Enter item name")
	if err != nil {
		return err
	}

	qty, err := m.catalog.Quantity(name)
	if err != nil {
		return m.reportMissing(ctx, name, err, "%s not found in inventory.")
	}

	return m.prompter.Say(FormatInfo(fmt.Sprintf("%s: %d in stock.", name, qty)))
}

// reportMissing renders ErrItemNotFound with format; any other error is rendered as is.
func (m *InventoryMenu) reportMissing(ctx context.Context, name string, err error, format string) error {
	if errors.Is(err, inventory.ErrItemNotFound) {
		common.LogDebug(ctx, "Item not found", common.Fields{"item": name})
		return m.prompter.Say(FormatError(fmt.Sprintf(format, name)))
	}

	common.LogError(ctx, err, "Inventory operation failed", common.Fields{"item": name})
	return m.prompter.Say(FormatError(err.Error()))
}

func (m *InventoryMenu) viewInventory() error {
	records := m.catalog.List()
	if len(records) == 0 {
		return m.prompter.Say(FormatInfo("Inventory is empty."))
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Item"),
		TableHeaderStyle.Render("Quantity"),
		TableHeaderStyle.Render("Price"),
		TableHeaderStyle.Render("Value"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 20),
		strings.Repeat("-", 8),
		strings.Repeat("-", 10),
		strings.Repeat("-", 12))

	total := decimal.Zero
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", record.Name, record.Quantity, record.UnitPrice.String(), FormatMoney(record.Value()))
		total = total.Add(record.Value())
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render inventory: %w", err)
	}

	if _, err := fmt.Fprint(m.prompter.Writer(), b.String()); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return m.prompter.Say(SubtleStyle.Render(fmt.Sprintf("%d item(s), total value %s", len(records), FormatMoney(total))))
}
