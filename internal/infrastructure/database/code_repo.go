package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const (
	insertCode  = `INSERT INTO allowed_codes (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`
	deleteCode  = `DELETE FROM allowed_codes WHERE code = $1`
	codeExists  = `SELECT EXISTS (SELECT 1 FROM allowed_codes WHERE code = $1)`
	selectCodes = `SELECT code FROM allowed_codes ORDER BY id`
)

func (s *Store) AddCode(ctx context.Context, code string) error {
	if _, err := s.db.Exec(ctx, insertCode, code); err != nil {
		return fmt.Errorf("insert code: %w", err)
	}
	return nil
}

func (s *Store) RemoveCode(ctx context.Context, code string) (bool, error) {
	tag, err := s.db.Exec(ctx, deleteCode, code)
	if err != nil {
		return false, fmt.Errorf("delete code: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) IsCodeAllowed(ctx context.Context, code string) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, codeExists, code).Scan(&ok); err != nil {
		return false, fmt.Errorf("check code: %w", err)
	}
	return ok, nil
}

func (s *Store) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, selectCodes)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan codes: %w", err)
	}
	return codes, nil
}
