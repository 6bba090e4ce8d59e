package ports

import (
	"context"
	"database/sql"
	"time"

	"github.com/walidbs/comptoir/internal/core/domain"
)

// LedgerEntryFilter narrows a ledger listing. Zero values mean "no filter".
type LedgerEntryFilter struct {
	From *time.Time
	To   *time.Time
	Text string // matches reference or description
}

// AccountRepository persists supplier/client account rows. The Tx-suffixed
// methods operate against an open transaction and exist so the payment
// repository can perform its read-modify-write inside one unit of work.
type AccountRepository interface {
	// SaveAccount inserts the account and, when opening is non-nil, its
	// INITIAL_BALANCE ledger entry within the same transaction.
	SaveAccount(ctx context.Context, account domain.Account, opening *domain.LedgerEntry) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]domain.Account, error)
	// DeleteAccount removes the account; ledger entries and payments cascade.
	DeleteAccount(ctx context.Context, accountID string) error

	FindAccountByIDTx(ctx context.Context, tx *sql.Tx, accountID string) (*domain.Account, error)
	UpdateAccountBalanceTx(ctx context.Context, tx *sql.Tx, account domain.Account) error
}

// LedgerRepository reads and appends ledger entries. Entries are append-only:
// no update or delete operation exists.
type LedgerRepository interface {
	ListEntriesByAccount(ctx context.Context, accountID string, filter LedgerEntryFilter) ([]domain.LedgerEntry, error)
	FindLatestEntryByAccount(ctx context.Context, accountID string) (*domain.LedgerEntry, error)

	InsertEntryTx(ctx context.Context, tx *sql.Tx, entry domain.LedgerEntry) error
}

// PaymentRepository owns the atomic units of work that keep the account row,
// the payment row and the ledger history mutually consistent.
type PaymentRepository interface {
	// SavePayment executes the whole record-payment sequence in one
	// transaction: load account, compute the new signed balance, insert the
	// payment, update the account, append the PAYMENT entry. The returned
	// entry carries the resulting BalanceAfter.
	SavePayment(ctx context.Context, payment domain.Payment, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	// SaveInvoice appends a PURCHASE/SALE entry and updates the account
	// balance in one transaction. No payment row is written.
	SaveInvoice(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	ListPaymentsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// RepositoryProvider bundles the concrete repositories handed to services.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	LedgerRepo  LedgerRepository
	PaymentRepo PaymentRepository
}
