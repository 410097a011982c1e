package application

import (
	"context"
	"errors"
	"sync"

	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/output"
)

var _ output.Store = (*memStore)(nil)

// memStore is an in-memory output.Store that counts every call.
type memStore struct {
	mu        sync.Mutex
	codes     []string
	users     map[int64]entities.User
	userOrder []int64
	responses []entities.Response
	nextID    int64
	reads     int
	writes    int
}

func newMemStore() *memStore {
	return &memStore{users: map[int64]entities.User{}}
}

func (s *memStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads + s.writes
}

func (s *memStore) AddCode(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	for _, c := range s.codes {
		if c == code {
			return nil
		}
	}
	s.codes = append(s.codes, code)
	return nil
}

func (s *memStore) RemoveCode(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	for i, c := range s.codes {
		if c == code {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) IsCodeAllowed(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	for _, c := range s.codes {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListCodes(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return append([]string(nil), s.codes...), nil
}

func (s *memStore) AddUserIfAbsent(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if _, ok := s.users[user.ID]; ok {
		return nil
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *memStore) FindUser(_ context.Context, userID int64) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) FindUsers(_ context.Context, userIDs []int64) (map[int64]entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	out := make(map[int64]entities.User, len(userIDs))
	for _, id := range userIDs {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *memStore) ListUserIDs(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return append([]int64(nil), s.userOrder...), nil
}

func (s *memStore) InsertResponse(_ context.Context, userID int64, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	for _, r := range s.responses {
		if r.UserID == userID && r.Code == code {
			return nil
		}
	}
	s.nextID++
	s.responses = append(s.responses, entities.Response{ID: s.nextID, Code: code, UserID: userID})
	return nil
}

func (s *memStore) ListResponsesByCode(_ context.Context, code string) ([]entities.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	var out []entities.Response
	for _, r := range s.responses {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) ListResponsesByUser(_ context.Context, userID int64) ([]entities.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	var out []entities.Response
	for _, r := range s.responses {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) ListUserIDsByCode(_ context.Context, code string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	var out []int64
	for _, r := range s.responses {
		if r.Code == code {
			out = append(out, r.UserID)
		}
	}
	return out, nil
}

func (s *memStore) FlushResponses(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.responses = nil
	return nil
}

func (s *memStore) DeleteResponsesWithUnknownCodes(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	allowed := make(map[string]bool, len(s.codes))
	for _, c := range s.codes {
		allowed[c] = true
	}
	kept := s.responses[:0]
	var n int64
	for _, r := range s.responses {
		if allowed[r.Code] {
			kept = append(kept, r)
			continue
		}
		n++
	}
	s.responses = kept
	return n, nil
}

func (s *memStore) FlushCodesAndResponses(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.codes = nil
	s.responses = nil
	return nil
}

// removeUser simulates a user row vanishing behind its responses.
func (s *memStore) removeUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for i, u := range s.userOrder {
		if u == id {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
}

// recordingNotifier records deliveries and fails for the ids in failFor.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []int64
	failFor map[int64]bool
}

func (n *recordingNotifier) Notify(_ context.Context, userID int64, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, userID)
	if n.failFor[userID] {
		return errors.New("user blocked the bot")
	}
	return nil
}

const testSecret = "s3cret"

type fixture struct {
	store       *memStore
	notifier    *recordingNotifier
	aggregator  *Aggregator
	registry    *Registry
	broadcaster *Broadcaster
	admin       *AdminService
}

func newFixture() *fixture {
	store := newMemStore()
	notifier := &recordingNotifier{failFor: map[int64]bool{}}
	aggregator := NewAggregator(store)
	broadcaster := NewBroadcaster(store, notifier)
	return &fixture{
		store:       store,
		notifier:    notifier,
		aggregator:  aggregator,
		registry:    NewRegistry(store, aggregator),
		broadcaster: broadcaster,
		admin: NewAdminService(
			NewAuthorizer(testSecret, ""),
			store,
			aggregator,
			NewExporter(aggregator),
			broadcaster,
		),
	}
}

func (f *fixture) mustAddCode(t interface{ Fatalf(string, ...any) }, code string) {
	if _, err := f.admin.AddCode(context.Background(), testSecret, code); err != nil {
		t.Fatalf("add code %q: %v", code, err)
	}
}

func (f *fixture) mustRegister(t interface{ Fatalf(string, ...any) }, user entities.User, code string) {
	out, err := f.registry.Register(context.Background(), user, code)
	if err != nil {
		t.Fatalf("register %d for %q: %v", user.ID, code, err)
	}
	if !out.IsRegistered() {
		t.Fatalf("register %d for %q: status %q", user.ID, code, out.Status)
	}
}
