package catalog

import (
	"context"

	"github.com/factura/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// ReplaceAll atomically replaces the whole product set (backup restore)
	ReplaceAll(ctx context.Context, products []Product) error
}
