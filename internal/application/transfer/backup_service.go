package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/domain/shared"
)

// BackupService exports the whole dataset to a single JSON document and
// restores it from one
type BackupService struct {
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	invoiceRepo  billing.InvoiceRepository
	counterRepo  billing.CounterRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	invoiceRepo billing.InvoiceRepository,
	counterRepo billing.CounterRepository,
) *BackupService {
	return &BackupService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		counterRepo:  counterRepo,
	}
}

// Export serializes the complete dataset and returns the document together
// with the suggested download filename.
func (s *BackupService) Export(ctx context.Context) ([]byte, string, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}
	counter, err := s.counterRepo.Current(ctx)
	if err != nil {
		return nil, "", err
	}

	payload := BackupPayload{
		Products:  make([]ProductRecord, len(products)),
		Customers: make([]CustomerRecord, len(customers)),
		Invoices:  make([]InvoiceRecord, len(invoices)),
		Counter:   counter.Value,
	}
	for i := range products {
		payload.Products[i] = toProductRecord(&products[i])
	}
	for i := range customers {
		payload.Customers[i] = toCustomerRecord(&customers[i])
	}
	for i := range invoices {
		payload.Invoices[i] = toInvoiceRecord(&invoices[i])
	}

	document, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("factura-backup-%s.json", time.Now().Format("2006-01-02"))
	return document, filename, nil
}

// Import validates a backup document and replaces the whole dataset with its
// contents. Validation runs before any write, so a rejected file leaves the
// store untouched. Fields are checked in a fixed order and the first problem
// is reported by name: products, then customers, then invoices, then counter.
func (s *BackupService) Import(ctx context.Context, document []byte) error {
	payload, err := ParseBackup(document)
	if err != nil {
		return err
	}

	products := make([]catalog.Product, len(payload.Products))
	for i, rec := range payload.Products {
		products[i] = rec.toDomain()
	}
	customers := make([]partner.Customer, len(payload.Customers))
	for i, rec := range payload.Customers {
		customers[i] = rec.toDomain()
	}
	invoices := make([]billing.Invoice, len(payload.Invoices))
	for i, rec := range payload.Invoices {
		invoices[i] = rec.toDomain()
	}

	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return err
	}
	if err := s.customerRepo.ReplaceAll(ctx, customers); err != nil {
		return err
	}
	if err := s.invoiceRepo.ReplaceAll(ctx, invoices); err != nil {
		return err
	}
	return s.counterRepo.Set(ctx, billing.Sequence{Value: payload.Counter})
}

// ParseBackup decodes and validates a backup document. The section checks run
// in a fixed order so a file with several problems always reports the same
// first one.
func ParseBackup(document []byte) (*BackupPayload, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(document, &sections); err != nil {
		return nil, shared.NewInvalidBackupError("Backup file is not a JSON object")
	}

	var payload BackupPayload
	if err := requireArray(sections, "products", &payload.Products); err != nil {
		return nil, err
	}
	if err := requireArray(sections, "customers", &payload.Customers); err != nil {
		return nil, err
	}
	if err := requireArray(sections, "invoices", &payload.Invoices); err != nil {
		return nil, err
	}

	raw, ok := sections["counter"]
	if !ok {
		return nil, shared.NewInvalidBackupError(`Backup field "counter" is missing`)
	}
	if err := json.Unmarshal(raw, &payload.Counter); err != nil || payload.Counter < 0 {
		return nil, shared.NewInvalidBackupError(`Backup field "counter" must be a non-negative integer`)
	}

	return &payload, nil
}

func requireArray(sections map[string]json.RawMessage, field string, dest any) error {
	raw, ok := sections[field]
	if !ok {
		return shared.NewInvalidBackupError(fmt.Sprintf("Backup field %q is missing", field))
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return shared.NewInvalidBackupError(fmt.Sprintf("Backup field %q must be an array", field))
	}
	return nil
}
