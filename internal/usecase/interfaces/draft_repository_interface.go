package interfaces

import (
	"context"
	"laundry_pos/internal/domain/entities"
)

// IDraftRepository abstracts DynamoDB persistence for OrderDraft sessions.
//
// A missing draft is reported as a zero-value draft (empty ID), mirroring how
// the estimate store signals not-found; the use case decides whether that is
// an error.

type IDraftRepository interface {
	Save(ctx context.Context, d entities.OrderDraft) (entities.OrderDraft, error)
	GetByID(ctx context.Context, id string) (entities.OrderDraft, error)
	DeleteByID(ctx context.Context, id string) error
}
