package i18n

import (
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator("en")
	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"english", "en-US", "code_added", map[string]any{"Code": "KEYNOTE"}, "Code KEYNOTE added."},
		{"russian", "ru", "code_added", map[string]any{"Code": "KEYNOTE"}, "Код KEYNOTE добавлен."},
		{"unknown locale falls back", "fr", "admin_unauthorized", nil, "Wrong secret."},
		{"unknown key", "en", "no_such_key", nil, "no_such_key"},
		{"empty key", "en", "", nil, ""},
		{"plural one", "en", "broadcast_done", map[string]any{"Count": 1}, "Message sent to 1 person."},
		{"plural other", "en", "broadcast_done", map[string]any{"Count": 3}, "Message sent to 3 people."},
		{"russian few", "ru", "broadcast_done", map[string]any{"Count": 3}, "Сообщение отправлено 3 людям."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestCatalogsLoaded(t *testing.T) {
	tr := NewTranslator("en")
	var names []string
	for _, tag := range tr.Languages() {
		names = append(names, tag.String())
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "en") || !strings.Contains(joined, "ru") {
		t.Errorf("languages = %s, want en and ru", joined)
	}
}

func TestInvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale")
	if got := tr.T("", "codes_none", nil); got != "No allowed codes." {
		t.Errorf("T = %q, want English fallback", got)
	}
}
