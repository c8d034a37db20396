package billing

import (
	"time"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest is one requested invoice line. Prices and VAT
// rates come from the referenced product, never from the caller.
type CreateInvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
}

// CreateInvoiceRequest represents a request to issue a new invoice
type CreateInvoiceRequest struct {
	CustomerID uuid.UUID                  `json:"customer_id" binding:"required"`
	Supplier   string                     `json:"supplier" binding:"omitempty,oneof=ruby_rose trendy"`
	Items      []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateIssuerProfileRequest represents a request to update the issuer profile
type UpdateIssuerProfileRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	NIT        string `json:"nit" binding:"required,min=1,max=50"`
	Address    string `json:"address" binding:"max=500"`
	Phone      string `json:"phone" binding:"max=50"`
	Email      string `json:"email" binding:"max=200"`
	Resolution string `json:"resolution" binding:"max=300"`
}

// InvoiceItemResponse represents an invoice line in API responses
type InvoiceItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	VATRate      decimal.Decimal `json:"vat_rate"`
	LineSubtotal decimal.Decimal `json:"line_subtotal"`
	LineVAT      decimal.Decimal `json:"line_vat"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID               uuid.UUID                 `json:"id"`
	InvoiceNumber    string                    `json:"invoice_number"`
	Supplier         string                    `json:"supplier,omitempty"`
	CustomerID       uuid.UUID                 `json:"customer_id"`
	CustomerSnapshot billing.CustomerSnapshot  `json:"customer_snapshot"`
	Items            []InvoiceItemResponse     `json:"items"`
	Subtotal         decimal.Decimal           `json:"subtotal"`
	VATTotal         decimal.Decimal           `json:"vat_total"`
	Total            decimal.Decimal           `json:"total"`
	CUFE             string                    `json:"cufe"`
	CreatedAt        time.Time                 `json:"created_at"`
}

// IssuerProfileResponse represents the issuer profile in API responses
type IssuerProfileResponse struct {
	Name       string `json:"name"`
	NIT        string `json:"nit"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Resolution string `json:"resolution"`
}

// ToInvoiceItemResponse converts a domain invoice item to a response DTO
func ToInvoiceItemResponse(item *billing.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		SKU:          item.SKU,
		Unit:         item.Unit,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		VATRate:      item.VATRate,
		LineSubtotal: item.LineSubtotal,
		LineVAT:      item.LineVAT,
		LineTotal:    item.LineTotal,
	}
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i := range inv.Items {
		items[i] = ToInvoiceItemResponse(&inv.Items[i])
	}
	return InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		Supplier:         string(inv.Supplier),
		CustomerID:       inv.CustomerID,
		CustomerSnapshot: inv.CustomerSnapshot,
		Items:            items,
		Subtotal:         inv.Subtotal,
		VATTotal:         inv.VATTotal,
		Total:            inv.Total,
		CUFE:             inv.CUFE,
		CreatedAt:        inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ToIssuerProfileResponse converts the issuer profile to a response DTO
func ToIssuerProfileResponse(p *billing.IssuerProfile) IssuerProfileResponse {
	return IssuerProfileResponse{
		Name:       p.Name,
		NIT:        p.NIT,
		Address:    p.Address,
		Phone:      p.Phone,
		Email:      p.Email,
		Resolution: p.Resolution,
	}
}
