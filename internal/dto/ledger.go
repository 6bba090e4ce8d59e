package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walidbs/comptoir/internal/core/domain"
)

// LedgerEntryResponse defines the data returned for one ledger entry.
type LedgerEntryResponse struct {
	EntryID      string           `json:"id"`
	AccountID    string           `json:"accountId"`
	EntryType    domain.EntryType `json:"type"`
	Date         string           `json:"date"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	Amount       decimal.Decimal  `json:"amount"`
	BalanceAfter decimal.Decimal  `json:"balanceAfter"`
	Reference    string           `json:"reference"`
	Description  string           `json:"description"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:      e.EntryID,
		AccountID:    e.AccountID,
		EntryType:    e.EntryType,
		Date:         e.EntryDate.Format(time.DateOnly),
		Debit:        e.Debit,
		Credit:       e.Credit,
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		Reference:    e.Reference,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return out
}

// ListLedgerEntriesParams defines query parameters for the ledger listing.
// From and To are ISO dates; Text matches reference or description.
type ListLedgerEntriesParams struct {
	From string `form:"from"`
	To   string `form:"to"`
	Text string `form:"text"`
}
