package application

import (
	"context"
	"sync"
	"testing"

	"livefeedback/internal/domain/entities"
)

var alice = entities.User{ID: 42, Username: "alice", FirstName: "Alice", LastName: "Liddell"}

func TestRegisterIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.mustAddCode(t, "KEYNOTE")

	for i := 0; i < 2; i++ {
		out, err := f.registry.Register(ctx, alice, "KEYNOTE")
		if err != nil {
			t.Fatalf("register #%d: %v", i+1, err)
		}
		if out.Status != entities.OutcomeRegistered || out.Code != "KEYNOTE" {
			t.Fatalf("register #%d: got %+v", i+1, out)
		}
	}

	responses, _ := f.store.ListResponsesByCode(ctx, "KEYNOTE")
	if len(responses) != 1 {
		t.Fatalf("stored responses = %d, want 1", len(responses))
	}
}

func TestRegisterGates(t *testing.T) {
	tests := []struct {
		name string
		code string
		want entities.OutcomeStatus
	}{
		{"empty", "", entities.OutcomeNeedsCode},
		{"blank", "   ", entities.OutcomeNeedsCode},
		{"unknown", "NOPE", entities.OutcomeUnknownCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.mustAddCode(t, "KEYNOTE")
			writes := f.store.writes

			out, err := f.registry.Register(context.Background(), alice, tt.code)
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if out.Status != tt.want {
				t.Errorf("status = %q, want %q", out.Status, tt.want)
			}
			if f.store.writes != writes {
				t.Errorf("store writes = %d, want %d", f.store.writes, writes)
			}
			if len(f.store.users) != 0 {
				t.Errorf("users stored = %d, want 0", len(f.store.users))
			}
		})
	}
}

func TestRegisterNormalizesCode(t *testing.T) {
	f := newFixture()
	f.mustAddCode(t, "abc")

	allowed, _ := f.store.IsCodeAllowed(context.Background(), "ABC")
	if !allowed {
		t.Fatal("code added as abc should be allowed as ABC")
	}

	out, err := f.registry.Register(context.Background(), alice, " Abc ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.Status != entities.OutcomeRegistered || out.Code != "ABC" {
		t.Errorf("got %+v, want registered for ABC", out)
	}
}

func TestRegisterFirstWriteWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.mustAddCode(t, "A")
	f.mustAddCode(t, "B")

	f.mustRegister(t, alice, "A")
	renamed := alice
	renamed.Username = "alice_new"
	f.mustRegister(t, renamed, "B")

	u, _ := f.store.FindUser(ctx, alice.ID)
	if u == nil || u.Username != "alice" {
		t.Errorf("stored user = %+v, want username alice", u)
	}
}

func TestRegisterConcurrentSamePair(t *testing.T) {
	f := newFixture()
	f.mustAddCode(t, "KEYNOTE")

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.registry.Register(context.Background(), alice, "keynote")
			if err == nil && !out.IsRegistered() {
				t.Errorf("status = %q", out.Status)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	responses, _ := f.store.ListResponsesByCode(context.Background(), "KEYNOTE")
	if len(responses) != 1 {
		t.Errorf("stored responses = %d, want 1", len(responses))
	}
}

func TestMyResponses(t *testing.T) {
	f := newFixture()
	f.mustAddCode(t, "A")
	f.mustAddCode(t, "B")
	f.mustRegister(t, alice, "A")
	f.mustRegister(t, alice, "B")

	got, err := f.registry.MyResponses(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("my responses: %v", err)
	}
	if len(got) != 2 || got[0].Code != "A" || got[1].Code != "B" {
		t.Errorf("responses = %+v, want A then B", got)
	}
}
