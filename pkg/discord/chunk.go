package discord

import "strings"

// MaxMessageLength is Discord's limit on message content.
const MaxMessageLength = 2000

// SplitMessage cuts content into parts of at most limit bytes, preferring
// line boundaries. A single line longer than limit is cut hard on a rune
// boundary.
func SplitMessage(content string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if len(content) <= limit {
		return []string{content}
	}
	var parts []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			parts = append(parts, b.String())
			b.Reset()
		}
	}
	for _, line := range strings.SplitAfter(content, "\n") {
		if b.Len()+len(line) <= limit {
			b.WriteString(line)
			continue
		}
		flush()
		for len(line) > limit {
			cut := limit
			for cut > 0 && !isRuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		b.WriteString(line)
	}
	flush()
	return parts
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
