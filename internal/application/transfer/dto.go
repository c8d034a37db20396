package transfer

import (
	"time"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Backup records use float64 for monetary fields so the JSON carries plain
// numbers. Earlier exports were written that way and imports must keep
// accepting them.

// ProductRecord is a product as stored in a backup file
type ProductRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Unit      string    `json:"unit"`
	SalePrice float64   `json:"price_sale"`
	VATRate   float64   `json:"vat_rate"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerRecord is a customer as stored in a backup file
type CustomerRecord struct {
	ID                  uuid.UUID `json:"id"`
	CompanyName         string    `json:"company_name"`
	NIT                 string    `json:"nit"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address"`
	Website             string    `json:"website,omitempty"`
	LegalRepresentative string    `json:"legal_representative,omitempty"`
	EconomicActivity    string    `json:"economic_activity,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// CustomerSnapshotRecord is the embedded customer copy inside an invoice record
type CustomerSnapshotRecord struct {
	CompanyName         string `json:"company_name"`
	NIT                 string `json:"nit"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Website             string `json:"website,omitempty"`
	LegalRepresentative string `json:"legal_representative,omitempty"`
	EconomicActivity    string `json:"economic_activity,omitempty"`
}

// InvoiceItemRecord is an invoice line as stored in a backup file
type InvoiceItemRecord struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku,omitempty"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	VATRate      float64   `json:"vat_rate"`
	LineSubtotal float64   `json:"line_subtotal"`
	LineVAT      float64   `json:"line_vat"`
	LineTotal    float64   `json:"line_total"`
}

// InvoiceRecord is an invoice as stored in a backup file. Derived fields
// (totals, verification code) are restored verbatim, never recomputed: the
// file is the historical record.
type InvoiceRecord struct {
	ID               uuid.UUID              `json:"id"`
	InvoiceNumber    string                 `json:"invoice_number"`
	Supplier         string                 `json:"supplier,omitempty"`
	CustomerID       uuid.UUID              `json:"customer_id"`
	CustomerSnapshot CustomerSnapshotRecord `json:"customer_snapshot"`
	Items            []InvoiceItemRecord    `json:"items"`
	Subtotal         float64                `json:"subtotal"`
	VATTotal         float64                `json:"vat_total"`
	Total            float64                `json:"total"`
	CUFE             string                 `json:"cufe"`
	CreatedAt        time.Time              `json:"created_at"`
}

// BackupPayload is the complete exported dataset
type BackupPayload struct {
	Products  []ProductRecord  `json:"products"`
	Customers []CustomerRecord `json:"customers"`
	Invoices  []InvoiceRecord  `json:"invoices"`
	Counter   int64            `json:"counter"`
}

func toProductRecord(p *catalog.Product) ProductRecord {
	price, _ := p.SalePrice.Float64()
	rate, _ := p.VATRate.Float64()
	return ProductRecord{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Unit:      p.Unit,
		SalePrice: price,
		VATRate:   rate,
		CreatedAt: p.CreatedAt,
	}
}

func (r ProductRecord) toDomain() catalog.Product {
	return catalog.Product{
		BaseEntity: shared.BaseEntity{ID: r.ID, CreatedAt: r.CreatedAt},
		Name:       r.Name,
		SKU:        r.SKU,
		Unit:       r.Unit,
		SalePrice:  decimal.NewFromFloat(r.SalePrice),
		VATRate:    decimal.NewFromFloat(r.VATRate),
	}
}

func toCustomerRecord(c *partner.Customer) CustomerRecord {
	return CustomerRecord{
		ID:                  c.ID,
		CompanyName:         c.CompanyName,
		NIT:                 c.NIT,
		Email:               c.Email,
		Phone:               c.Phone,
		Address:             c.Address,
		Website:             c.Website,
		LegalRepresentative: c.LegalRepresentative,
		EconomicActivity:    c.EconomicActivity,
		CreatedAt:           c.CreatedAt,
	}
}

func (r CustomerRecord) toDomain() partner.Customer {
	return partner.Customer{
		BaseEntity:          shared.BaseEntity{ID: r.ID, CreatedAt: r.CreatedAt},
		CompanyName:         r.CompanyName,
		NIT:                 r.NIT,
		Email:               r.Email,
		Phone:               r.Phone,
		Address:             r.Address,
		Website:             r.Website,
		LegalRepresentative: r.LegalRepresentative,
		EconomicActivity:    r.EconomicActivity,
	}
}

func toInvoiceRecord(inv *billing.Invoice) InvoiceRecord {
	items := make([]InvoiceItemRecord, len(inv.Items))
	for i, item := range inv.Items {
		quantity, _ := item.Quantity.Float64()
		unitPrice, _ := item.UnitPrice.Float64()
		vatRate, _ := item.VATRate.Float64()
		lineSubtotal, _ := item.LineSubtotal.Float64()
		lineVAT, _ := item.LineVAT.Float64()
		lineTotal, _ := item.LineTotal.Float64()
		items[i] = InvoiceItemRecord{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			SKU:          item.SKU,
			Unit:         item.Unit,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			VATRate:      vatRate,
			LineSubtotal: lineSubtotal,
			LineVAT:      lineVAT,
			LineTotal:    lineTotal,
		}
	}

	subtotal, _ := inv.Subtotal.Float64()
	vatTotal, _ := inv.VATTotal.Float64()
	total, _ := inv.Total.Float64()
	return InvoiceRecord{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Supplier:      string(inv.Supplier),
		CustomerID:    inv.CustomerID,
		CustomerSnapshot: CustomerSnapshotRecord{
			CompanyName:         inv.CustomerSnapshot.CompanyName,
			NIT:                 inv.CustomerSnapshot.NIT,
			Email:               inv.CustomerSnapshot.Email,
			Phone:               inv.CustomerSnapshot.Phone,
			Address:             inv.CustomerSnapshot.Address,
			Website:             inv.CustomerSnapshot.Website,
			LegalRepresentative: inv.CustomerSnapshot.LegalRepresentative,
			EconomicActivity:    inv.CustomerSnapshot.EconomicActivity,
		},
		Items:     items,
		Subtotal:  subtotal,
		VATTotal:  vatTotal,
		Total:     total,
		CUFE:      inv.CUFE,
		CreatedAt: inv.CreatedAt,
	}
}

func (r InvoiceRecord) toDomain() billing.Invoice {
	items := make([]billing.InvoiceItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = billing.InvoiceItem{
			ID:           item.ID,
			InvoiceID:    r.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			SKU:          item.SKU,
			Unit:         item.Unit,
			Quantity:     decimal.NewFromFloat(item.Quantity),
			UnitPrice:    decimal.NewFromFloat(item.UnitPrice),
			VATRate:      decimal.NewFromFloat(item.VATRate),
			LineSubtotal: decimal.NewFromFloat(item.LineSubtotal),
			LineVAT:      decimal.NewFromFloat(item.LineVAT),
			LineTotal:    decimal.NewFromFloat(item.LineTotal),
		}
	}

	return billing.Invoice{
		BaseEntity:    shared.BaseEntity{ID: r.ID, CreatedAt: r.CreatedAt},
		InvoiceNumber: r.InvoiceNumber,
		Supplier:      billing.Supplier(r.Supplier),
		CustomerID:    r.CustomerID,
		CustomerSnapshot: billing.CustomerSnapshot{
			CompanyName:         r.CustomerSnapshot.CompanyName,
			NIT:                 r.CustomerSnapshot.NIT,
			Email:               r.CustomerSnapshot.Email,
			Phone:               r.CustomerSnapshot.Phone,
			Address:             r.CustomerSnapshot.Address,
			Website:             r.CustomerSnapshot.Website,
			LegalRepresentative: r.CustomerSnapshot.LegalRepresentative,
			EconomicActivity:    r.CustomerSnapshot.EconomicActivity,
		},
		Items:    items,
		Subtotal: decimal.NewFromFloat(r.Subtotal),
		VATTotal: decimal.NewFromFloat(r.VATTotal),
		Total:    decimal.NewFromFloat(r.Total),
		CUFE:     r.CUFE,
	}
}
