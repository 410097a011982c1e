package database

import "livefeedback/internal/domain/entities"

type userRow struct {
	UserID    int64  `db:"user_id"`
	Username  string `db:"username"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type responseRow struct {
	ID     int64  `db:"id"`
	Code   string `db:"speech_code"`
	UserID int64  `db:"user_id"`
}

func userToDomain(u userRow) entities.User {
	return entities.User{
		ID:        u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func responseToDomain(r responseRow) entities.Response {
	return entities.Response{
		ID:     r.ID,
		Code:   r.Code,
		UserID: r.UserID,
	}
}
