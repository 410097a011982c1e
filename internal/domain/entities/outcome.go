package entities

// OutcomeStatus is the result of a registration attempt.
type OutcomeStatus string

const (
	OutcomeNeedsCode   OutcomeStatus = "needs_code"
	OutcomeUnknownCode OutcomeStatus = "unknown_code"
	OutcomeRegistered  OutcomeStatus = "registered"
)

// Outcome carries the status of a registration and, when registered, the
// normalized code the user was registered for.
type Outcome struct {
	Status OutcomeStatus
	Code   string
}

func (o Outcome) IsRegistered() bool {
	return o.Status == OutcomeRegistered
}
