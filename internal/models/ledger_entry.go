package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persisted row for one append-only ledger movement.
// Rows are inserted once and never updated or deleted individually; they
// disappear only when the owning account row is deleted (cascade).
type LedgerEntry struct {
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	EntryType    string          `db:"entry_type"`
	EntryDate    time.Time       `db:"entry_date"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	Amount       decimal.Decimal `db:"amount"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	Reference    string          `db:"reference"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}
