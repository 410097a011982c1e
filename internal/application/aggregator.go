package application

import (
	"context"
	"fmt"
	"log"

	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/output"
)

// Aggregator joins responses with users into report shapes. Reports are
// computed on every call and reflect the store at that instant.
type Aggregator struct {
	store output.Store
}

func NewAggregator(store output.Store) *Aggregator {
	return &Aggregator{store: store}
}

// ReportByCode returns the attendees of code. Its length is the attendance
// count. Responses whose user row is missing are skipped.
func (a *Aggregator) ReportByCode(ctx context.Context, code string) ([]entities.FullResponse, error) {
	responses, err := a.store.ListResponsesByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list responses by code: %w", err)
	}
	return a.join(ctx, responses)
}

// ReportAllCodes builds one CodeReport per allowed code. Code order follows
// the store and is not guaranteed.
func (a *Aggregator) ReportAllCodes(ctx context.Context) ([]entities.CodeReport, error) {
	codes, err := a.store.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	reports := make([]entities.CodeReport, 0, len(codes))
	for _, code := range codes {
		responses, err := a.ReportByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		reports = append(reports, entities.CodeReport{Code: code, Responses: responses})
	}
	return reports, nil
}

func (a *Aggregator) ReportByUser(ctx context.Context, userID int64) ([]entities.Response, error) {
	responses, err := a.store.ListResponsesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list responses by user: %w", err)
	}
	return responses, nil
}

// ReportAllUsersFull groups every response by user. Users without any
// response contribute no report.
func (a *Aggregator) ReportAllUsersFull(ctx context.Context) ([]entities.UserReport, error) {
	ids, err := a.store.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	reports := make([]entities.UserReport, 0, len(ids))
	for _, id := range ids {
		user, err := a.store.FindUser(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find user %d: %w", id, err)
		}
		if user == nil {
			continue
		}
		responses, err := a.ReportByUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(responses) == 0 {
			continue
		}
		full := make([]entities.FullResponse, len(responses))
		for i, r := range responses {
			full[i] = fullResponse(r, *user)
		}
		reports = append(reports, entities.UserReport{UserID: id, Username: user.Username, Responses: full})
	}
	return reports, nil
}

// join resolves the users of responses with one batched lookup.
func (a *Aggregator) join(ctx context.Context, responses []entities.Response) ([]entities.FullResponse, error) {
	if len(responses) == 0 {
		return []entities.FullResponse{}, nil
	}
	ids := make([]int64, 0, len(responses))
	seen := make(map[int64]struct{}, len(responses))
	for _, r := range responses {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	users, err := a.store.FindUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	out := make([]entities.FullResponse, 0, len(responses))
	for _, r := range responses {
		user, ok := users[r.UserID]
		if !ok {
			log.Printf("⚠️ Skipping response %d: %v (user_id=%d)", r.ID, domain.ErrDanglingReference, r.UserID)
			continue
		}
		out = append(out, fullResponse(r, user))
	}
	return out, nil
}

func fullResponse(r entities.Response, u entities.User) entities.FullResponse {
	return entities.FullResponse{
		Response:  r,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
