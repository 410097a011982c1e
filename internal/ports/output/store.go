package output

import (
	"context"

	"livefeedback/internal/domain/entities"
)

// CodeRepository manages the allowed speech codes. Codes are stored normalized.
type CodeRepository interface {
	// AddCode inserts code; adding an existing code is a no-op.
	AddCode(ctx context.Context, code string) error
	// RemoveCode deletes code and reports whether a row was deleted.
	RemoveCode(ctx context.Context, code string) (bool, error)
	IsCodeAllowed(ctx context.Context, code string) (bool, error)
	// ListCodes returns every allowed code in no particular order.
	ListCodes(ctx context.Context) ([]string, error)
}

// UserRepository manages chat users.
type UserRepository interface {
	// AddUserIfAbsent inserts user unless a row with the same id exists.
	AddUserIfAbsent(ctx context.Context, user entities.User) error
	// FindUser returns nil, nil when no user has this id.
	FindUser(ctx context.Context, userID int64) (*entities.User, error)
	// FindUsers resolves several ids at once; missing ids are absent from the map.
	FindUsers(ctx context.Context, userIDs []int64) (map[int64]entities.User, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// ResponseRepository manages attendance records.
type ResponseRepository interface {
	// InsertResponse records (userID, code); an existing pair is a no-op.
	InsertResponse(ctx context.Context, userID int64, code string) error
	ListResponsesByCode(ctx context.Context, code string) ([]entities.Response, error)
	ListResponsesByUser(ctx context.Context, userID int64) ([]entities.Response, error)
	ListUserIDsByCode(ctx context.Context, code string) ([]int64, error)
	FlushResponses(ctx context.Context) error
	// DeleteResponsesWithUnknownCodes removes responses whose code is no longer
	// allowed and returns how many were removed.
	DeleteResponsesWithUnknownCodes(ctx context.Context) (int64, error)
}

// Store is the persistence port of the attendance registry.
type Store interface {
	CodeRepository
	UserRepository
	ResponseRepository
	// FlushCodesAndResponses deletes every allowed code, then every response.
	// Users are kept.
	FlushCodesAndResponses(ctx context.Context) error
}
