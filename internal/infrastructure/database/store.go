package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"livefeedback/internal/ports/output"
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ output.Store = (*Store)(nil)

// Store implements output.Store on PostgreSQL. Every write relies on a unique
// constraint with ON CONFLICT DO NOTHING, so concurrent duplicates collapse
// into one row without surfacing an error.
type Store struct {
	db DBTX
}

// NewStore creates a Store over db.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

const (
	deleteAllCodes     = `DELETE FROM allowed_codes`
	deleteAllResponses = `DELETE FROM responses`
)

func (s *Store) FlushCodesAndResponses(ctx context.Context) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteAllCodes); err != nil {
			return fmt.Errorf("delete codes: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteAllResponses); err != nil {
			return fmt.Errorf("delete responses: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("flush codes and responses: %w", err)
	}
	return nil
}
