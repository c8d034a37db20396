package partner

import (
	"context"

	"github.com/factura/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.Repository[Customer]

	// ReplaceAll atomically replaces the whole customer set (backup restore)
	ReplaceAll(ctx context.Context, customers []Customer) error
}
