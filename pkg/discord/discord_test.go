package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"livefeedback/internal/domain"
)

func TestErrorKey(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", domain.ErrUnauthorized), "admin_unauthorized"},
		{domain.ErrNotConfirmed, "admin_not_confirmed"},
		{domain.ErrCodeNotFound, "code_not_found"},
		{domain.ErrEmptyMessage, "broadcast_empty_message"},
		{errors.New("disk full"), "error_generic"},
	}
	for _, tt := range tests {
		if got := ErrorKey(tt.err); got != tt.want {
			t.Errorf("ErrorKey(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestExtractOptions(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Name: "addcode",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "secret", Type: discordgo.ApplicationCommandOptionString, Value: "s3cret"},
			{Name: "code", Type: discordgo.ApplicationCommandOptionString, Value: "keynote"},
		},
	}
	opts := ExtractOptions(data)
	if opts.String("secret") != "s3cret" || opts.String("code") != "keynote" {
		t.Errorf("options = %+v", opts)
	}
	if opts.String("missing") != "" {
		t.Error("missing option should be empty")
	}
}

func TestSplitMessage(t *testing.T) {
	if got := SplitMessage("short", 10); len(got) != 1 || got[0] != "short" {
		t.Errorf("SplitMessage(short) = %q", got)
	}

	content := "line one\nline two\nline three\n"
	parts := SplitMessage(content, 12)
	if strings.Join(parts, "") != content {
		t.Errorf("parts %q do not rebuild content", parts)
	}
	for _, p := range parts {
		if len(p) > 12 {
			t.Errorf("part %q longer than limit", p)
		}
	}

	long := strings.Repeat("я", 15)
	parts = SplitMessage(long, 7)
	if strings.Join(parts, "") != long {
		t.Errorf("hard-cut parts do not rebuild content")
	}
	for _, p := range parts {
		if !utf8.ValidString(p) || len(p) > 7 {
			t.Errorf("bad part %q", p)
		}
	}
}
