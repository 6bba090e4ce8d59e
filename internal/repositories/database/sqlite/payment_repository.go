package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/models"
	"github.com/walidbs/comptoir/internal/utils/balance"
	"github.com/walidbs/comptoir/internal/utils/mapping"
	"github.com/walidbs/comptoir/internal/utils/pagination"
)

// SQLitePaymentRepository owns the atomic units of work of the ledger. It is
// the only place where multiple writes are grouped; everything between Begin
// and Commit either lands together or not at all.
type SQLitePaymentRepository struct {
	BaseRepository
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
}

func newPaymentRepository(db *sql.DB, accountRepo ports.AccountRepository, ledgerRepo ports.LedgerRepository) *SQLitePaymentRepository {
	return &SQLitePaymentRepository{
		BaseRepository: BaseRepository{DB: db},
		accountRepo:    accountRepo,
		ledgerRepo:     ledgerRepo,
	}
}

var _ ports.PaymentRepository = (*SQLitePaymentRepository)(nil)

const paymentColumns = `payment_id, account_id, amount, payment_date, method, reference, note, created_at`

// SavePayment performs the record-payment sequence inside one transaction:
// load the account (a missing account aborts before any write), insert the
// payment row, derive the new signed balance, update the account row and
// append the PAYMENT ledger entry carrying balanceAfter.
func (r *SQLitePaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	account, err := r.accountRepo.FindAccountByIDTx(ctx, tx, payment.AccountID)
	if err != nil {
		return nil, err
	}

	debit, credit, err := balance.PaymentMovement(account.Kind, payment.Amount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to derive payment movement", err)
	}
	newSigned := balance.ApplyMovement(account.SignedBalance(), debit, credit)

	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, query,
		m.PaymentID,
		m.AccountID,
		m.Amount,
		m.PaymentDate,
		m.Method,
		m.Reference,
		m.Note,
		m.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBError("failed to insert payment "+m.PaymentID, err)
	}

	account.BalanceMagnitude, account.BalanceSign = balance.FromSigned(newSigned)
	if account.Kind == domain.Client {
		account.TotalPaid = account.TotalPaid.Add(payment.Amount)
	}
	account.UpdatedAt = payment.CreatedAt
	if err := r.accountRepo.UpdateAccountBalanceTx(ctx, tx, *account); err != nil {
		return nil, err
	}

	entry.Debit = debit
	entry.Credit = credit
	entry.BalanceAfter = newSigned
	if err := r.ledgerRepo.InsertEntryTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := r.Commit(tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveInvoice appends a PURCHASE/SALE entry and updates the account balance
// in one transaction. No payment row is involved.
func (r *SQLitePaymentRepository) SaveInvoice(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	account, err := r.accountRepo.FindAccountByIDTx(ctx, tx, entry.AccountID)
	if err != nil {
		return nil, err
	}

	debit, credit, err := balance.InvoiceMovement(account.Kind, entry.Amount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to derive invoice movement", err)
	}
	newSigned := balance.ApplyMovement(account.SignedBalance(), debit, credit)

	account.BalanceMagnitude, account.BalanceSign = balance.FromSigned(newSigned)
	account.UpdatedAt = entry.CreatedAt
	if err := r.accountRepo.UpdateAccountBalanceTx(ctx, tx, *account); err != nil {
		return nil, err
	}

	entry.Debit = debit
	entry.Credit = credit
	entry.BalanceAfter = newSigned
	if err := r.ledgerRepo.InsertEntryTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := r.Commit(tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListPaymentsByAccount retrieves a page of payments, most recent first,
// using the (payment_date, created_at) cursor token.
func (r *SQLitePaymentRepository) ListPaymentsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE account_id = ?`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (payment_date, created_at) < (?, ?)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query += ` ORDER BY payment_date DESC, created_at DESC LIMIT ?;`
	args = append(args, fetchLimit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapDBError("failed to query payments for account "+accountID, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.AccountID,
			&m.Amount,
			&m.PaymentDate,
			&m.Method,
			&m.Reference,
			&m.Note,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, wrapDBError("failed to scan payment row for account "+accountID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, wrapDBError("error iterating payment rows for account "+accountID, err)
	}

	var nextTokenVal *string
	results := payments
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		nextTokenVal = &token
		results = payments[:limit]
	}

	return mapping.ToDomainPaymentSlice(results), nextTokenVal, nil
}
