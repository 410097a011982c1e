package entities

import "fmt"

// CodeReport lists every attendee of one speech code.
type CodeReport struct {
	Code      string
	Responses []FullResponse
}

// Count is the attendance count of the code.
func (r CodeReport) Count() int {
	return len(r.Responses)
}

// UserReport groups every response of one user.
type UserReport struct {
	UserID    int64
	Username  string
	Responses []FullResponse
}

// Codes returns the codes of the report in response order. A response with an
// empty code is labelled by its id so the record is not lost.
func (r UserReport) Codes() []string {
	codes := make([]string, 0, len(r.Responses))
	for _, resp := range r.Responses {
		if resp.Code == "" {
			codes = append(codes, fmt.Sprintf("ID: %d", resp.ID))
			continue
		}
		codes = append(codes, resp.Code)
	}
	return codes
}
