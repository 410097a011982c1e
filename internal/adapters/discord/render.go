package discord

import (
	"fmt"
	"strings"

	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/output"
)

// attendeeLine renders "@username — First Last" and drops what is empty.
func attendeeLine(r entities.FullResponse) string {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	switch {
	case r.Username == "":
		return name
	case name == "":
		return "@" + r.Username
	default:
		return fmt.Sprintf("@%s — %s", r.Username, name)
	}
}

func renderCodeReport(t output.Translator, locale string, report entities.CodeReport) string {
	lines := make([]string, len(report.Responses))
	for i, r := range report.Responses {
		lines[i] = attendeeLine(r)
	}
	return t.T(locale, "report_by_code", map[string]any{
		"Code":  report.Code,
		"Count": report.Count(),
		"Lines": strings.Join(lines, "\n"),
	})
}

func renderAllReports(t output.Translator, locale string, reports []entities.CodeReport) string {
	if len(reports) == 0 {
		return t.T(locale, "codes_none", nil)
	}
	parts := make([]string, len(reports))
	for i, r := range reports {
		parts[i] = renderCodeReport(t, locale, r)
	}
	return strings.Join(parts, "\n\n")
}

func renderCodes(t output.Translator, locale string, codes []string) string {
	if len(codes) == 0 {
		return t.T(locale, "codes_none", nil)
	}
	return t.T(locale, "codes_list", map[string]any{"Codes": strings.Join(codes, ", ")})
}

func renderMyResponses(t output.Translator, locale string, responses []entities.Response) string {
	if len(responses) == 0 {
		return t.T(locale, "responses_none", nil)
	}
	codes := make([]string, len(responses))
	for i, r := range responses {
		codes[i] = r.Code
	}
	return t.T(locale, "responses_list", map[string]any{
		"Count": len(responses),
		"Codes": strings.Join(codes, ", "),
	})
}

func renderOutcome(t output.Translator, locale string, out entities.Outcome) string {
	data := map[string]any{"Code": out.Code}
	switch out.Status {
	case entities.OutcomeNeedsCode:
		return t.T(locale, "register_needs_code", nil)
	case entities.OutcomeUnknownCode:
		return t.T(locale, "register_unknown_code", data)
	default:
		return t.T(locale, "register_registered", data)
	}
}

func renderHelp(t output.Translator, locale string) string {
	var b strings.Builder
	b.WriteString(t.T(locale, "help_header", nil))
	for _, c := range commands() {
		b.WriteString(fmt.Sprintf("\n/%s", c.Name))
		for _, o := range c.Options {
			if o.Required {
				b.WriteString(fmt.Sprintf(" <%s>", o.Name))
			} else {
				b.WriteString(fmt.Sprintf(" [%s]", o.Name))
			}
		}
		b.WriteString(" — " + c.Description)
	}
	return b.String()
}
