package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/models"
	"github.com/walidbs/comptoir/internal/utils/mapping"
)

type SQLiteAccountRepository struct {
	BaseRepository
}

func newAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ ports.AccountRepository = (*SQLiteAccountRepository)(nil)

const accountColumns = `account_id, kind, name, reference, balance_magnitude, balance_sign, total_paid, created_at, updated_at`

// SaveAccount inserts the account row and, when an opening entry is given,
// the INITIAL_BALANCE ledger entry in the same transaction. A failed account
// insert (e.g. duplicate reference) leaves no ledger entry behind.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account, opening *domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, query,
		m.AccountID,
		m.Kind,
		m.Name,
		m.Reference,
		m.BalanceMagnitude,
		m.BalanceSign,
		m.TotalPaid,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return wrapDBError("failed to insert account "+m.AccountID, err)
	}

	if opening != nil {
		if err := insertLedgerEntry(ctx, tx, mapping.ToModelLedgerEntry(*opening)); err != nil {
			return err
		}
	}

	return r.Commit(tx)
}

// FindAccountByID retrieves an account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ?;`
	return r.scanAccount(r.DB.QueryRowContext(ctx, query, accountID), accountID)
}

// FindAccountByIDTx retrieves an account within an open transaction. Because
// the read and the subsequent writes share one transaction, no read-then-write
// race window exists.
func (r *SQLiteAccountRepository) FindAccountByIDTx(ctx context.Context, tx *sql.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ?;`
	return r.scanAccount(tx.QueryRowContext(ctx, query, accountID), accountID)
}

func (r *SQLiteAccountRepository) scanAccount(row *sql.Row, accountID string) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Kind,
		&m.Name,
		&m.Reference,
		&m.BalanceMagnitude,
		&m.BalanceSign,
		&m.TotalPaid,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError("failed to find account "+accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves accounts, optionally filtered by kind, ordered by name.
func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + accountColumns + ` FROM accounts`
	args := []any{}
	if kind != nil {
		query += ` WHERE kind = ?`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY name ASC LIMIT ? OFFSET ?;`
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.Kind,
			&m.Name,
			&m.Reference,
			&m.BalanceMagnitude,
			&m.BalanceSign,
			&m.TotalPaid,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, wrapDBError("failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccountBalanceTx writes the balance fields of the account row within
// an open transaction. Contact-style attributes are untouched: only the
// orchestrator mutates balances.
func (r *SQLiteAccountRepository) UpdateAccountBalanceTx(ctx context.Context, tx *sql.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET balance_magnitude = ?,
		    balance_sign = ?,
		    total_paid = ?,
		    updated_at = ?
		WHERE account_id = ?;
	`
	res, err := tx.ExecContext(ctx, query,
		m.BalanceMagnitude,
		m.BalanceSign,
		m.TotalPaid,
		m.UpdatedAt,
		m.AccountID,
	)
	if err != nil {
		return wrapDBError("failed to update balance for account "+m.AccountID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDBError("failed to read rows affected for account "+m.AccountID, err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("account " + m.AccountID + " not found for balance update")
	}
	return nil
}

// DeleteAccount removes the account row; its ledger entries and payments are
// removed by the ON DELETE CASCADE foreign keys.
func (r *SQLiteAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = ?;`, accountID)
	if err != nil {
		return wrapDBError("failed to delete account "+accountID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDBError("failed to read rows affected deleting account "+accountID, err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found for delete")
	}
	return nil
}
