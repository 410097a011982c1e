package entities

// Scope selects the recipients of a broadcast. The zero value targets every
// known user; a code-scoped Scope with an empty Code is invalid, never a
// fallback to all users.
type Scope struct {
	Code   string
	byCode bool
}

// AllUsers targets every known user.
func AllUsers() Scope { return Scope{} }

// ByCode targets the users who responded to code.
func ByCode(code string) Scope { return Scope{Code: code, byCode: true} }

func (s Scope) IsAllUsers() bool {
	return !s.byCode
}

// BroadcastResult summarizes a best-effort fan-out.
type BroadcastResult struct {
	Attempted int
	Failed    int
}
