package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"livefeedback/internal/domain/entities"
)

const (
	insertResponse = `INSERT INTO responses (speech_code, user_id) VALUES ($1, $2)
ON CONFLICT (user_id, speech_code) DO NOTHING`
	selectResponsesByCode = `SELECT id, speech_code, user_id FROM responses WHERE speech_code = $1 ORDER BY id`
	selectResponsesByUser = `SELECT id, speech_code, user_id FROM responses WHERE user_id = $1 ORDER BY id`
	selectUserIDsByCode   = `SELECT user_id FROM responses WHERE speech_code = $1 ORDER BY id`
	deleteUnknownCodes    = `DELETE FROM responses r
WHERE NOT EXISTS (SELECT 1 FROM allowed_codes c WHERE c.code = r.speech_code)`
)

func (s *Store) InsertResponse(ctx context.Context, userID int64, code string) error {
	if _, err := s.db.Exec(ctx, insertResponse, code, userID); err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

func (s *Store) ListResponsesByCode(ctx context.Context, code string) ([]entities.Response, error) {
	return s.listResponses(ctx, selectResponsesByCode, code)
}

func (s *Store) ListResponsesByUser(ctx context.Context, userID int64) ([]entities.Response, error) {
	return s.listResponses(ctx, selectResponsesByUser, userID)
}

func (s *Store) listResponses(ctx context.Context, query string, arg any) ([]entities.Response, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[responseRow])
	if err != nil {
		return nil, fmt.Errorf("scan responses: %w", err)
	}
	responses := make([]entities.Response, len(out))
	for i := range out {
		responses[i] = responseToDomain(out[i])
	}
	return responses, nil
}

func (s *Store) ListUserIDsByCode(ctx context.Context, code string) ([]int64, error) {
	rows, err := s.db.Query(ctx, selectUserIDsByCode, code)
	if err != nil {
		return nil, fmt.Errorf("list user ids by code: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan user ids: %w", err)
	}
	return ids, nil
}

func (s *Store) FlushResponses(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, deleteAllResponses); err != nil {
		return fmt.Errorf("flush responses: %w", err)
	}
	return nil
}

func (s *Store) DeleteResponsesWithUnknownCodes(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteUnknownCodes)
	if err != nil {
		return 0, fmt.Errorf("delete responses with unknown codes: %w", err)
	}
	return tag.RowsAffected(), nil
}
