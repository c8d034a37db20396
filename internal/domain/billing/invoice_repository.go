package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence.
// Invoices are append-only: there are no update or delete operations.
type InvoiceRepository interface {
	// FindByID finds an invoice (with its items) by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its sequential number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindAll returns all invoices, newest first
	FindAll(ctx context.Context) ([]Invoice, error)

	// Append persists a newly created invoice with its items
	Append(ctx context.Context, invoice *Invoice) error

	// Count counts all invoices
	Count(ctx context.Context) (int64, error)

	// ReplaceAll atomically replaces the whole invoice set (backup restore)
	ReplaceAll(ctx context.Context, invoices []Invoice) error
}
