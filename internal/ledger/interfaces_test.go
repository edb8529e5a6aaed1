package ledger

import "github.com/Veraticus/tally/internal/service"

var _ service.AccountLedger = (*Ledger)(nil)
