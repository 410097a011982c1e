package entities

// Response is one attendance record. (UserID, Code) is unique.
type Response struct {
	ID     int64
	Code   string
	UserID int64
}

// FullResponse is a Response joined with the display fields of its user.
type FullResponse struct {
	Response
	Username  string
	FirstName string
	LastName  string
}
