package entities

import (
	"fmt"
	"strings"

	"livefeedback/internal/domain"
)

// ExportLayout selects the shape of a CSV export.
type ExportLayout string

const (
	LayoutByCode     ExportLayout = "by_code"
	LayoutByUser     ExportLayout = "by_user"
	LayoutAggregated ExportLayout = "aggregated"
)

// Layouts lists the supported layouts, default first.
var Layouts = []ExportLayout{LayoutByCode, LayoutByUser, LayoutAggregated}

// ParseLayout resolves a user-supplied layout name. An empty name selects the
// by-code layout.
func ParseLayout(s string) (ExportLayout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LayoutByCode, nil
	}
	for _, l := range Layouts {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownLayout, s)
}
