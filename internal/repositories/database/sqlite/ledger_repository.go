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

type SQLiteLedgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *sql.DB) *SQLiteLedgerRepository {
	return &SQLiteLedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ ports.LedgerRepository = (*SQLiteLedgerRepository)(nil)

const ledgerColumns = `entry_id, account_id, entry_type, entry_date, debit, credit, amount, balance_after, reference, description, created_at`

// insertLedgerEntry appends one entry within an open transaction. The ledger
// is append-only: this is the only statement that ever touches the table
// besides reads and the account-delete cascade.
func insertLedgerEntry(ctx context.Context, tx *sql.Tx, m models.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := tx.ExecContext(ctx, query,
		m.EntryID,
		m.AccountID,
		m.EntryType,
		m.EntryDate,
		m.Debit,
		m.Credit,
		m.Amount,
		m.BalanceAfter,
		m.Reference,
		m.Description,
		m.CreatedAt,
	)
	if err != nil {
		return wrapDBError("failed to insert ledger entry "+m.EntryID, err)
	}
	return nil
}

// InsertEntryTx appends an entry as part of a caller-owned transaction.
func (r *SQLiteLedgerRepository) InsertEntryTx(ctx context.Context, tx *sql.Tx, entry domain.LedgerEntry) error {
	return insertLedgerEntry(ctx, tx, mapping.ToModelLedgerEntry(entry))
}

// ListEntriesByAccount retrieves entries ascending by (date, createdAt).
// The query is restartable: re-running it reflects the latest committed state.
func (r *SQLiteLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, filter ports.LedgerEntryFilter) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE account_id = ?`
	args := []any{accountID}

	if filter.From != nil {
		query += ` AND entry_date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND entry_date <= ?`
		args = append(args, *filter.To)
	}
	if filter.Text != "" {
		query += ` AND (reference LIKE ? OR description LIKE ?)`
		pattern := "%" + filter.Text + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY entry_date ASC, created_at ASC;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("failed to query ledger entries for account "+accountID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.AccountID,
			&m.EntryType,
			&m.EntryDate,
			&m.Debit,
			&m.Credit,
			&m.Amount,
			&m.BalanceAfter,
			&m.Reference,
			&m.Description,
			&m.CreatedAt,
		); err != nil {
			return nil, wrapDBError("failed to scan ledger entry row for account "+accountID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("error iterating ledger entry rows for account "+accountID, err)
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// FindLatestEntryByAccount returns the most recent entry in (date, createdAt)
// order, or ErrNotFound when the account has no entries yet.
func (r *SQLiteLedgerRepository) FindLatestEntryByAccount(ctx context.Context, accountID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE account_id = ?
		ORDER BY entry_date DESC, created_at DESC
		LIMIT 1;
	`
	var m models.LedgerEntry
	err := r.DB.QueryRowContext(ctx, query, accountID).Scan(
		&m.EntryID,
		&m.AccountID,
		&m.EntryType,
		&m.EntryDate,
		&m.Debit,
		&m.Credit,
		&m.Amount,
		&m.BalanceAfter,
		&m.Reference,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError("failed to find latest ledger entry for account "+accountID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}
