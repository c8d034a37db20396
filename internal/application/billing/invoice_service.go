package billing

import (
	"context"
	"fmt"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer renders an issued invoice as a printable document
type InvoiceRenderer interface {
	Render(invoice *billing.Invoice, issuer *billing.IssuerProfile) ([]byte, error)
}

// InvoiceService handles invoice issuing and retrieval
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	counterRepo  billing.CounterRepository
	issuerRepo   billing.IssuerProfileRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	renderer     InvoiceRenderer
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	counterRepo billing.CounterRepository,
	issuerRepo billing.IssuerProfileRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	renderer InvoiceRenderer,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		counterRepo:  counterRepo,
		issuerRepo:   issuerRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		renderer:     renderer,
	}
}

// CreateInvoice issues a new invoice: it snapshots the customer, prices the
// lines from the live catalog, mints the next sequence number and appends the
// finalized document. The counter advances before the append, so a failed
// write leaves a gap rather than a duplicate number.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	seq, err := s.counterRepo.Next(ctx)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(
		seq.Formatted(),
		billing.Supplier(req.Supplier),
		customer.ID,
		snapshotCustomer(customer),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Append(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// buildItems resolves the requested lines against the product catalog
func (s *InvoiceService) buildItems(ctx context.Context, reqs []CreateInvoiceItemRequest) ([]billing.InvoiceItem, error) {
	if len(reqs) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice must contain at least one item")
	}

	ids := make([]uuid.UUID, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]billing.InvoiceItem, 0, len(reqs))
	for _, r := range reqs {
		product, ok := byID[r.ProductID]
		if !ok {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", fmt.Sprintf("Product %s does not exist", r.ProductID))
		}
		item, err := billing.NewInvoiceItem(
			product.ID,
			product.Name,
			product.SKU,
			product.Unit,
			decimal.NewFromFloat(r.Quantity),
			product.SalePrice,
			product.VATRate,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// snapshotCustomer copies the customer's current fields into the immutable
// per-invoice snapshot
func snapshotCustomer(c *partner.Customer) billing.CustomerSnapshot {
	return billing.CustomerSnapshot{
		CompanyName:         c.CompanyName,
		NIT:                 c.NIT,
		Email:               c.Email,
		Phone:               c.Phone,
		Address:             c.Address,
		Website:             c.Website,
		LegalRepresentative: c.LegalRepresentative,
		EconomicActivity:    c.EconomicActivity,
	}
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// ListInvoices retrieves all invoices, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponses(invoices), nil
}

// NextInvoiceNumber previews the number the next invoice will carry without
// advancing the counter
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	seq, err := s.counterRepo.Current(ctx)
	if err != nil {
		return "", err
	}
	return seq.Next().Formatted(), nil
}

// RenderInvoicePDF renders an invoice as a PDF and returns the document bytes
// together with the suggested download filename.
func (s *InvoiceService) RenderInvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	issuer, err := s.issuerRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	document, err := s.renderer.Render(invoice, issuer)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Factura-%s.pdf", invoice.InvoiceNumber)
	return document, filename, nil
}
