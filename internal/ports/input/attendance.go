package input

import (
	"context"

	"livefeedback/internal/domain/entities"
)

// AttendanceUseCase is the unprivileged surface offered to every chat user.
type AttendanceUseCase interface {
	Register(ctx context.Context, user entities.User, code string) (entities.Outcome, error)
	MyResponses(ctx context.Context, userID int64) ([]entities.Response, error)
}
