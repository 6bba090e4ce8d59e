package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType identifies the balance-affecting event a ledger entry records.
type EntryType string

const (
	EntryPayment        EntryType = "PAYMENT"
	EntryPurchase       EntryType = "PURCHASE"
	EntrySale           EntryType = "SALE"
	EntryInitialBalance EntryType = "INITIAL_BALANCE"
)

// LedgerEntry is one immutable, append-only record of a balance movement.
// At most one of Debit/Credit is non-zero; BalanceAfter is the account's
// signed balance immediately after the entry is applied.
type LedgerEntry struct {
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	EntryType    EntryType       `json:"entryType"`
	EntryDate    time.Time       `json:"entryDate"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"` // tie-breaker for same-day ordering
}
