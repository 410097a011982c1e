package input

import (
	"context"

	"livefeedback/internal/domain/entities"
)

// AdminUseCase groups the operations gated behind the shared secret. Every
// method returns domain.ErrUnauthorized and zero data on a wrong secret.
type AdminUseCase interface {
	ListCodes(ctx context.Context, secret string) ([]string, error)
	ListByCode(ctx context.Context, secret, code string) (entities.CodeReport, error)
	ListAll(ctx context.Context, secret string) ([]entities.CodeReport, error)
	Export(ctx context.Context, secret string, layout entities.ExportLayout) ([]byte, error)
	AddCode(ctx context.Context, secret, code string) (string, error)
	DeleteCode(ctx context.Context, secret, code string) (string, error)
	FlushResponses(ctx context.Context, secret, confirmation string) error
	FlushCodes(ctx context.Context, secret, confirmation string) error
	PruneResponses(ctx context.Context, secret string) (int64, error)
	Broadcast(ctx context.Context, secret, message string, scope entities.Scope) (entities.BroadcastResult, error)
}
