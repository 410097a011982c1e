package application

import (
	"context"
	"fmt"

	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/input"
	"livefeedback/internal/ports/output"
)

var _ input.AttendanceUseCase = (*Registry)(nil)

// Registry is the only entry point that creates attendance records.
type Registry struct {
	store      output.Store
	aggregator *Aggregator
}

func NewRegistry(store output.Store, aggregator *Aggregator) *Registry {
	return &Registry{store: store, aggregator: aggregator}
}

// Register records that user attended the speech identified by code.
// Registering twice for the same code is a success and stores one row.
// The user row and the response row are two independent writes.
func (r *Registry) Register(ctx context.Context, user entities.User, code string) (entities.Outcome, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return entities.Outcome{Status: entities.OutcomeNeedsCode}, nil
	}
	allowed, err := r.store.IsCodeAllowed(ctx, code)
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("check code: %w", err)
	}
	if !allowed {
		return entities.Outcome{Status: entities.OutcomeUnknownCode, Code: code}, nil
	}
	if err := r.store.AddUserIfAbsent(ctx, user); err != nil {
		return entities.Outcome{}, fmt.Errorf("add user: %w", err)
	}
	if err := r.store.InsertResponse(ctx, user.ID, code); err != nil {
		return entities.Outcome{}, fmt.Errorf("insert response: %w", err)
	}
	return entities.Outcome{Status: entities.OutcomeRegistered, Code: code}, nil
}

// MyResponses lists the responses of userID.
func (r *Registry) MyResponses(ctx context.Context, userID int64) ([]entities.Response, error) {
	return r.aggregator.ReportByUser(ctx, userID)
}
