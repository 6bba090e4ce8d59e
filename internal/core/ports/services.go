package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/dto"
)

// AccountService manages account lifecycle, including opening-balance
// seeding at creation time.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// PaymentService is the ledger transaction orchestrator: it validates input,
// resolves the account and delegates the atomic write to the repository.
type PaymentService interface {
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.Payment, *domain.LedgerEntry, error)
	RecordInvoice(ctx context.Context, req dto.RecordInvoiceRequest) (*domain.LedgerEntry, error)
}

// LedgerService is the read-only query side of the ledger.
type LedgerService interface {
	ListEntries(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, error)
	CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	ListPayments(ctx context.Context, accountID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
}
