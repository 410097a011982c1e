package application

import (
	"context"
	"fmt"
	"strings"

	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/input"
	"livefeedback/internal/ports/output"
)

var _ input.AdminUseCase = (*AdminService)(nil)

// AdminService runs the privileged operations. The secret is checked before
// any store access; a rejected call reads and writes nothing.
type AdminService struct {
	auth        *Authorizer
	store       output.Store
	aggregator  *Aggregator
	exporter    *Exporter
	broadcaster *Broadcaster
}

func NewAdminService(
	auth *Authorizer,
	store output.Store,
	aggregator *Aggregator,
	exporter *Exporter,
	broadcaster *Broadcaster,
) *AdminService {
	return &AdminService{
		auth:        auth,
		store:       store,
		aggregator:  aggregator,
		exporter:    exporter,
		broadcaster: broadcaster,
	}
}

func (s *AdminService) ListCodes(ctx context.Context, secret string) ([]string, error) {
	if err := s.auth.Check(secret); err != nil {
		return nil, err
	}
	codes, err := s.store.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	return codes, nil
}

func (s *AdminService) ListByCode(ctx context.Context, secret, code string) (entities.CodeReport, error) {
	if err := s.auth.Check(secret); err != nil {
		return entities.CodeReport{}, err
	}
	code = domain.NormalizeCode(code)
	if code == "" {
		return entities.CodeReport{}, domain.ErrEmptyCode
	}
	responses, err := s.aggregator.ReportByCode(ctx, code)
	if err != nil {
		return entities.CodeReport{}, err
	}
	return entities.CodeReport{Code: code, Responses: responses}, nil
}

func (s *AdminService) ListAll(ctx context.Context, secret string) ([]entities.CodeReport, error) {
	if err := s.auth.Check(secret); err != nil {
		return nil, err
	}
	return s.aggregator.ReportAllCodes(ctx)
}

func (s *AdminService) Export(ctx context.Context, secret string, layout entities.ExportLayout) ([]byte, error) {
	if err := s.auth.Check(secret); err != nil {
		return nil, err
	}
	return s.exporter.Export(ctx, layout)
}

// AddCode allows code and returns its normalized form.
func (s *AdminService) AddCode(ctx context.Context, secret, code string) (string, error) {
	if err := s.auth.Check(secret); err != nil {
		return "", err
	}
	code = domain.NormalizeCode(code)
	if code == "" {
		return "", domain.ErrEmptyCode
	}
	if err := s.store.AddCode(ctx, code); err != nil {
		return "", fmt.Errorf("add code: %w", err)
	}
	return code, nil
}

// DeleteCode removes code. Responses that reference it are kept.
func (s *AdminService) DeleteCode(ctx context.Context, secret, code string) (string, error) {
	if err := s.auth.Check(secret); err != nil {
		return "", err
	}
	code = domain.NormalizeCode(code)
	if code == "" {
		return "", domain.ErrEmptyCode
	}
	deleted, err := s.store.RemoveCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("remove code: %w", err)
	}
	if !deleted {
		return code, domain.ErrCodeNotFound
	}
	return code, nil
}

func (s *AdminService) FlushResponses(ctx context.Context, secret, confirmation string) error {
	if err := s.auth.Confirm(secret, confirmation); err != nil {
		return err
	}
	if err := s.store.FlushResponses(ctx); err != nil {
		return fmt.Errorf("flush responses: %w", err)
	}
	return nil
}

// FlushCodes deletes every allowed code and every response. Users are kept.
func (s *AdminService) FlushCodes(ctx context.Context, secret, confirmation string) error {
	if err := s.auth.Confirm(secret, confirmation); err != nil {
		return err
	}
	if err := s.store.FlushCodesAndResponses(ctx); err != nil {
		return fmt.Errorf("flush codes: %w", err)
	}
	return nil
}

// PruneResponses deletes responses whose code is no longer allowed.
func (s *AdminService) PruneResponses(ctx context.Context, secret string) (int64, error) {
	if err := s.auth.Check(secret); err != nil {
		return 0, err
	}
	n, err := s.store.DeleteResponsesWithUnknownCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune responses: %w", err)
	}
	return n, nil
}

func (s *AdminService) Broadcast(ctx context.Context, secret, message string, scope entities.Scope) (entities.BroadcastResult, error) {
	if err := s.auth.Check(secret); err != nil {
		return entities.BroadcastResult{}, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.BroadcastResult{}, domain.ErrEmptyMessage
	}
	if !scope.IsAllUsers() {
		scope.Code = domain.NormalizeCode(scope.Code)
		if scope.Code == "" {
			return entities.BroadcastResult{}, domain.ErrEmptyCode
		}
	}
	recipients, err := s.broadcaster.ResolveAudience(ctx, scope)
	if err != nil {
		return entities.BroadcastResult{}, err
	}
	return s.broadcaster.Deliver(ctx, recipients, message), nil
}
