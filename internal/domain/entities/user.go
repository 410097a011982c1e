package entities

// User is a chat user who registered for at least one speech. The first
// registration wins: later registrations never rewrite the stored names.
type User struct {
	ID        int64
	Username  string // may be empty
	FirstName string
	LastName  string // may be empty
}
