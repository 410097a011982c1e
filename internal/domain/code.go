package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// NormalizeCode trims and upper-cases a speech code. Every code is stored and
// compared in this form.
func NormalizeCode(code string) string {
	return upper.String(strings.TrimSpace(code))
}
