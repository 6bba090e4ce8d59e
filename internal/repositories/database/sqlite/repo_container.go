package sqlite

import (
	"database/sql"

	"github.com/walidbs/comptoir/internal/core/ports"
)

// NewRepositoryProvider wires the concrete SQLite repositories around one
// shared database handle. The handle's lifecycle (open/close) belongs to the
// composition root, not to the repositories.
func NewRepositoryProvider(db *sql.DB) ports.RepositoryProvider {
	accountRepo := newAccountRepository(db)
	ledgerRepo := newLedgerRepository(db)
	paymentRepo := newPaymentRepository(db, accountRepo, ledgerRepo)

	return ports.RepositoryProvider{
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
		PaymentRepo: paymentRepo,
	}
}
