package catalog

import (
	"time"

	"github.com/factura/backend/internal/domain/shared"
	"github.com/factura/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// StandardVATRate is the fixed VAT rate applied to every product (19%).
// Products cannot carry any other rate; updates re-pin it.
var StandardVATRate = decimal.NewFromFloat(0.19)

// DefaultUnit is the unit label used when none is provided
const DefaultUnit = "UND"

// Product represents a sellable item in the catalog.
// Invoices snapshot product fields at creation time, so editing or deleting
// a product never alters historical invoices.
type Product struct {
	shared.BaseEntity
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	SKU       string          `gorm:"type:varchar(50);index" json:"sku,omitempty"`
	Unit      string          `gorm:"type:varchar(20);not null" json:"unit"`
	SalePrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"price_sale"`
	VATRate   decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"vat_rate"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with the standard VAT rate
func NewProduct(name, sku, unit string, salePrice valueobject.Money) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if unit == "" {
		unit = DefaultUnit
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		SKU:        sku,
		Unit:       unit,
		SalePrice:  valueobject.Round2(salePrice.Amount()),
		VATRate:    StandardVATRate,
	}, nil
}

// Update updates the product's basic information.
// The VAT rate is re-pinned to the standard rate on every update.
func (p *Product) Update(name, sku, unit string, salePrice valueobject.Money) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if unit == "" {
		unit = DefaultUnit
	}
	if err := validateUnit(unit); err != nil {
		return err
	}

	p.Name = name
	p.SKU = sku
	p.Unit = unit
	p.SalePrice = valueobject.Round2(salePrice.Amount())
	p.VATRate = StandardVATRate
	p.UpdatedAt = time.Now()

	return nil
}

// GetSalePriceMoney returns the sale price as Money value object
func (p *Product) GetSalePriceMoney() valueobject.Money {
	return valueobject.NewMoneyCOP(p.SalePrice)
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateUnit validates the unit label
func validateUnit(unit string) error {
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
