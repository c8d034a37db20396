package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the CRUD surface common to catalog and partner stores.
// Domain repositories embed it and add their own lookups on top.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
