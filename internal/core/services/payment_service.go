package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/middleware"
)

// paymentService is the ledger transaction orchestrator. It validates input
// and classifies errors; the actual read-modify-write runs inside a single
// repository transaction, so a failure at any point leaves the account and
// ledger exactly as they were.
type paymentService struct {
	paymentRepo ports.PaymentRepository
	accountRepo ports.AccountRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo ports.PaymentRepository, accountRepo ports.AccountRepository) ports.PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
	}
}

var _ ports.PaymentService = (*paymentService)(nil)

// parseISODate turns a wire date (2006-01-02) into a time.Time, classifying
// malformed input as a validation error.
func parseISODate(value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return date.UTC(), nil
}

// paymentDescription composes the human-readable ledger description from the
// payment method and the optional note.
func paymentDescription(method, note string) string {
	if note == "" {
		return fmt.Sprintf("Payment by %s", method)
	}
	return fmt.Sprintf("Payment by %s - %s", method, note)
}

// RecordPayment records one settlement: a payment row, a PAYMENT ledger entry
// and the updated account balance, all in one atomic unit of work. Nothing is
// written when validation fails or the account does not exist.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.Payment, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: payment amount must be greater than zero, got %s", apperrors.ErrValidation, req.Amount)
	}
	date, err := parseISODate(req.Date)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		PaymentDate: date,
		Method:      req.Method,
		Reference:   req.Reference,
		Note:        req.Note,
		CreatedAt:   now,
	}
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.AccountID,
		EntryType:   domain.EntryPayment,
		EntryDate:   date,
		Amount:      req.Amount,
		Reference:   req.Reference,
		Description: paymentDescription(req.Method, req.Note),
		CreatedAt:   now,
	}

	createdEntry, err := s.paymentRepo.SavePayment(ctx, payment, entry)
	if err != nil {
		logger.Error("Failed to record payment",
			slog.String("account_id", req.AccountID),
			slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("account_id", payment.AccountID),
		slog.String("amount", payment.Amount.String()),
		slog.String("balance_after", createdEntry.BalanceAfter.String()))
	return &payment, createdEntry, nil
}

// RecordInvoice books a credit invoice: a PURCHASE entry for supplier
// accounts, a SALE entry for client accounts, plus the balance update, in one
// atomic unit of work.
func (s *paymentService) RecordInvoice(ctx context.Context, req dto.RecordInvoiceRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: invoice amount must be greater than zero, got %s", apperrors.ErrValidation, req.Amount)
	}
	date, err := parseISODate(req.Date)
	if err != nil {
		return nil, err
	}

	// The entry type follows the account kind; resolve it up front. Existence
	// is re-checked inside the repository transaction.
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	entryType := domain.EntryPurchase
	description := req.Description
	if account.Kind == domain.Client {
		entryType = domain.EntrySale
		if description == "" {
			description = "Sale invoice"
		}
	} else if description == "" {
		description = "Purchase invoice"
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.AccountID,
		EntryType:   entryType,
		EntryDate:   date,
		Amount:      req.Amount,
		Reference:   req.Reference,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	createdEntry, err := s.paymentRepo.SaveInvoice(ctx, entry)
	if err != nil {
		logger.Error("Failed to record invoice",
			slog.String("account_id", req.AccountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Invoice recorded",
		slog.String("entry_id", createdEntry.EntryID),
		slog.String("account_id", createdEntry.AccountID),
		slog.String("entry_type", string(createdEntry.EntryType)),
		slog.String("balance_after", createdEntry.BalanceAfter.String()))
	return createdEntry, nil
}
