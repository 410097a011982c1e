package application

import (
	"errors"
	"testing"

	"livefeedback/internal/domain"
)

func TestAuthorize(t *testing.T) {
	a := NewAuthorizer("s3cret", "")
	tests := []struct {
		supplied string
		want     bool
	}{
		{"s3cret", true},
		{"S3CRET", false},
		{"s3cret ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := a.Authorize(tt.supplied); got != tt.want {
			t.Errorf("Authorize(%q) = %v, want %v", tt.supplied, got, tt.want)
		}
	}
}

func TestAuthorizeEmptySecret(t *testing.T) {
	if NewAuthorizer("", "").Authorize("") {
		t.Error("an empty configured secret must authorize nothing")
	}
}

func TestConfirm(t *testing.T) {
	a := NewAuthorizer("s3cret", "")
	if err := a.Confirm("s3cret", "YES"); err != nil {
		t.Errorf("Confirm(valid) = %v", err)
	}
	if err := a.Confirm("wrong", "YES"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Confirm(wrong secret) = %v, want ErrUnauthorized", err)
	}
	if err := a.Confirm("s3cret", "yes"); !errors.Is(err, domain.ErrNotConfirmed) {
		t.Errorf("Confirm(yes) = %v, want ErrNotConfirmed", err)
	}

	custom := NewAuthorizer("s3cret", "DELETE")
	if err := custom.Confirm("s3cret", "DELETE"); err != nil {
		t.Errorf("Confirm(custom token) = %v", err)
	}
}
