package output

import "context"

// Notifier delivers a text message to one chat user.
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) error
}
