package mapping

import (
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/models"
)

// ToModelLedgerEntry converts a domain ledger entry to its persistence model.
func ToModelLedgerEntry(e domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      e.EntryID,
		AccountID:    e.AccountID,
		EntryType:    string(e.EntryType),
		EntryDate:    e.EntryDate,
		Debit:        e.Debit,
		Credit:       e.Credit,
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		Reference:    e.Reference,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a persistence model back to the domain entry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		EntryType:    domain.EntryType(m.EntryType),
		EntryDate:    m.EntryDate,
		Debit:        m.Debit,
		Credit:       m.Credit,
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		Reference:    m.Reference,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of ledger entry models.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
