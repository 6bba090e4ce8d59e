package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/middleware"
	"github.com/walidbs/comptoir/internal/utils/balance"
)

// accountService manages account lifecycle. Balance fields are owned by the
// payment orchestrator after creation; this service only seeds them.
type accountService struct {
	accountRepo ports.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo ports.AccountRepository) ports.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ ports.AccountService = (*accountService)(nil)

// CreateAccount creates a supplier or client account. A non-zero opening
// balance seeds exactly one INITIAL_BALANCE ledger entry in the same atomic
// unit of work as the account insert.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative, got %s", apperrors.ErrValidation, req.OpeningBalance)
	}
	sign := req.OpeningSign
	if sign == "" {
		sign = domain.Credit
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:        uuid.NewString(),
		Kind:             req.Kind,
		Name:             req.Name,
		Reference:        req.Reference,
		BalanceMagnitude: req.OpeningBalance,
		BalanceSign:      sign,
		TotalPaid:        decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var opening *domain.LedgerEntry
	if !req.OpeningBalance.IsZero() {
		debit, credit := balance.OpeningMovement(req.OpeningBalance, sign)
		opening = &domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			AccountID:    account.AccountID,
			EntryType:    domain.EntryInitialBalance,
			EntryDate:    now.Truncate(24 * time.Hour),
			Debit:        debit,
			Credit:       credit,
			Amount:       req.OpeningBalance,
			BalanceAfter: balance.ToSigned(req.OpeningBalance, sign),
			Description:  "Opening balance",
			CreatedAt:    now,
		}
	}

	if err := s.accountRepo.SaveAccount(ctx, account, opening); err != nil {
		logger.Error("Failed to save account",
			slog.String("reference", req.Reference),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("kind", string(account.Kind)),
		slog.Bool("seeded_opening_balance", opening != nil))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves accounts, optionally filtered by kind.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	var kind *domain.AccountKind
	if params.Kind != "" {
		k := domain.AccountKind(params.Kind)
		kind = &k
	}
	return s.accountRepo.ListAccounts(ctx, kind, params.Limit, params.Offset)
}

// DeleteAccount removes an account together with its ledger entries and
// payments (the account owns both).
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
