package inventory

import "github.com/Veraticus/tally/internal/service"

var _ service.InventoryCatalog = (*Catalog)(nil)
