package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"livefeedback/internal/domain/entities"
)

const (
	insertUser = `INSERT INTO users (user_id, username, first_name, last_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO NOTHING`
	selectUser    = `SELECT user_id, username, first_name, last_name FROM users WHERE user_id = $1`
	selectUsers   = `SELECT user_id, username, first_name, last_name FROM users WHERE user_id = ANY($1)`
	selectUserIDs = `SELECT user_id FROM users ORDER BY user_id`
)

func (s *Store) AddUserIfAbsent(ctx context.Context, user entities.User) error {
	_, err := s.db.Exec(ctx, insertUser, user.ID, user.Username, user.FirstName, user.LastName)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) FindUser(ctx context.Context, userID int64) (*entities.User, error) {
	rows, err := s.db.Query(ctx, selectUser, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[userRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u := userToDomain(row)
	return &u, nil
}

func (s *Store) FindUsers(ctx context.Context, userIDs []int64) (map[int64]entities.User, error) {
	out := make(map[int64]entities.User, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := s.db.Query(ctx, selectUsers, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	for _, r := range users {
		out[r.UserID] = userToDomain(r)
	}
	return out, nil
}

func (s *Store) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.Query(ctx, selectUserIDs)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan user ids: %w", err)
	}
	return ids, nil
}
