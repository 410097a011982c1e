package application

import (
	"context"
	"fmt"
	"log"

	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/output"
)

// Broadcaster resolves recipients and fans a message out to them. Delivery is
// sequential and best-effort.
type Broadcaster struct {
	store    output.Store
	notifier output.Notifier
}

func NewBroadcaster(store output.Store, notifier output.Notifier) *Broadcaster {
	return &Broadcaster{store: store, notifier: notifier}
}

// ResolveAudience returns the user ids targeted by scope, without duplicates,
// in store order.
func (b *Broadcaster) ResolveAudience(ctx context.Context, scope entities.Scope) ([]int64, error) {
	var (
		ids []int64
		err error
	)
	if scope.IsAllUsers() {
		ids, err = b.store.ListUserIDs(ctx)
	} else {
		ids, err = b.store.ListUserIDsByCode(ctx, scope.Code)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve audience: %w", err)
	}
	return dedupe(ids), nil
}

// Deliver sends message to every recipient. A failed delivery is logged and
// does not stop the batch.
func (b *Broadcaster) Deliver(ctx context.Context, recipients []int64, message string) entities.BroadcastResult {
	res := entities.BroadcastResult{}
	for _, id := range recipients {
		res.Attempted++
		if err := b.notifier.Notify(ctx, id, message); err != nil {
			res.Failed++
			log.Printf("⚠️ Broadcast to %d failed: %v", id, err)
		}
	}
	return res
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
