package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/walidbs/comptoir/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	DB *sql.DB
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to defer after Commit: a rollback
// of a finished transaction is a no-op.
func (r *BaseRepository) Rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// wrapDBError classifies a storage error into the application taxonomy:
// constraint violations (unique, foreign key, not-null) become
// ErrDuplicate/ErrConstraint, everything else surfaces as a storage failure
// with the originating cause attached.
func wrapDBError(message string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return apperrors.NewAppError(409, message, fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err))
		default:
			return apperrors.NewAppError(409, message, fmt.Errorf("%w: %w", apperrors.ErrConstraint, err))
		}
	}
	return apperrors.NewAppError(500, message, err)
}
