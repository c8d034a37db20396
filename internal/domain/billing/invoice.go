package billing

import (
	"github.com/factura/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ISOTimestampLayout is how invoice timestamps enter the verification code:
// UTC with millisecond precision, matching the stored creation timestamps of
// previously issued invoices.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// Supplier is the optional issuing-brand tag carried by an invoice
type Supplier string

const (
	SupplierRubyRose Supplier = "ruby_rose"
	SupplierTrendy   Supplier = "trendy"
)

// IsValid checks if the supplier tag is one of the known brands
func (s Supplier) IsValid() bool {
	switch s {
	case SupplierRubyRose, SupplierTrendy:
		return true
	}
	return false
}

// DisplayName returns the brand name shown on rendered documents
func (s Supplier) DisplayName() string {
	switch s {
	case SupplierRubyRose:
		return "Ruby Rose"
	case SupplierTrendy:
		return "Trendy"
	}
	return string(s)
}

// CustomerSnapshot is the point-in-time copy of customer fields embedded in
// an invoice. It is a value, not a reference: editing the live customer later
// never alters it.
type CustomerSnapshot struct {
	CompanyName         string `gorm:"type:varchar(200);not null" json:"company_name"`
	NIT                 string `gorm:"type:varchar(50);not null" json:"nit"`
	Email               string `gorm:"type:varchar(200)" json:"email"`
	Phone               string `gorm:"type:varchar(50)" json:"phone"`
	Address             string `gorm:"type:varchar(500)" json:"address"`
	Website             string `gorm:"type:varchar(200)" json:"website,omitempty"`
	LegalRepresentative string `gorm:"type:varchar(200)" json:"legal_representative,omitempty"`
	EconomicActivity    string `gorm:"type:varchar(200)" json:"economic_activity,omitempty"`
}

// InvoiceItem is one line of an invoice. Product fields are denormalized at
// invoice time; the three derived amounts always satisfy
// line_total = line_subtotal + line_vat under 2-decimal rounding.
type InvoiceItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(200);not null" json:"product_name"`
	SKU          string          `gorm:"type:varchar(50)" json:"sku,omitempty"`
	Unit         string          `gorm:"type:varchar(20);not null" json:"unit"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	VATRate      decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"vat_rate"`
	LineSubtotal decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"line_subtotal"`
	LineVAT      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"line_vat"`
	LineTotal    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"line_total"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoiceItem creates an invoice line, validating the computation
// preconditions and deriving the line amounts.
func NewInvoiceItem(productID uuid.UUID, productName, sku, unit string, quantity, unitPrice, vatRate decimal.Decimal) (*InvoiceItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate must be between 0 and 1")
	}

	amounts := ComputeLine(quantity, unitPrice, vatRate)

	return &InvoiceItem{
		ID:           uuid.New(),
		ProductID:    productID,
		ProductName:  productName,
		SKU:          sku,
		Unit:         unit,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		VATRate:      vatRate,
		LineSubtotal: amounts.Subtotal,
		LineVAT:      amounts.VAT,
		LineTotal:    amounts.Total,
	}, nil
}

// Invoice is an issued sales invoice. It is immutable after creation: there
// is no update or delete path, and its customer data is a snapshot.
type Invoice struct {
	shared.BaseEntity
	InvoiceNumber    string           `gorm:"type:varchar(20);not null;uniqueIndex" json:"invoice_number"`
	Supplier         Supplier         `gorm:"type:varchar(20)" json:"supplier,omitempty"`
	CustomerID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerSnapshot CustomerSnapshot `gorm:"embedded;embeddedPrefix:customer_" json:"customer_snapshot"`
	Items            []InvoiceItem    `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal         decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	VATTotal         decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"vat_total"`
	Total            decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"total"`
	CUFE             string           `gorm:"type:char(96);not null" json:"cufe"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice assembles a finalized invoice: it aggregates the line amounts,
// stamps the sequence number, and derives the simulated verification code
// from the number, the snapshot tax ID, the total and the creation timestamp.
func NewInvoice(number string, supplier Supplier, customerID uuid.UUID, snapshot CustomerSnapshot, items []InvoiceItem) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if snapshot.NIT == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer snapshot must carry a NIT")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice must contain at least one item")
	}
	if supplier != "" && !supplier.IsValid() {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Unknown supplier tag")
	}

	inv := &Invoice{
		BaseEntity:       shared.NewBaseEntity(),
		InvoiceNumber:    number,
		Supplier:         supplier,
		CustomerID:       customerID,
		CustomerSnapshot: snapshot,
		Items:            items,
	}
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}

	totals := AggregateLines(inv.Items)
	inv.Subtotal = totals.Subtotal
	inv.VATTotal = totals.VATTotal
	inv.Total = totals.Total

	inv.CUFE = SimulatedCUFE(
		inv.InvoiceNumber,
		inv.CustomerSnapshot.NIT,
		inv.Total.String(),
		inv.CreatedAt.UTC().Format(ISOTimestampLayout),
	)

	return inv, nil
}

// ItemCount returns the number of lines on the invoice
func (inv *Invoice) ItemCount() int {
	return len(inv.Items)
}
