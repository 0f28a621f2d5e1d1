package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// Transactor runs a unit of work for a single tournament.
type Transactor interface {
	// WithinTournament opens a transaction holding the tournament's advisory lock
	// for its whole duration. Concurrent calls for the same tournament are serialized.
	WithinTournament(ctx context.Context, tournamentID int, fn func(exec SQLExecutor) error) error
}

type postgresTransactor struct {
	db *sql.DB
}

func NewPostgresTransactor(db *sql.DB) Transactor {
	return &postgresTransactor{db: db}
}

func (t *postgresTransactor) WithinTournament(ctx context.Context, tournamentID int, fn func(exec SQLExecutor) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, tournamentID); err != nil {
		return fmt.Errorf("failed to lock tournament %d: %w", tournamentID, err)
	}

	err = fn(tx)
	return err
}
