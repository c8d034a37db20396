package catalog

import (
	"time"

	"github.com/factura/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=200"`
	SKU       string  `json:"sku" binding:"max=50"`
	Unit      string  `json:"unit" binding:"max=20"`
	SalePrice float64 `json:"price_sale" binding:"min=0"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200"`
	SKU       *string  `json:"sku" binding:"omitempty,max=50"`
	Unit      *string  `json:"unit" binding:"omitempty,max=20"`
	SalePrice *float64 `json:"price_sale" binding:"omitempty,min=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku,omitempty"`
	Unit      string          `json:"unit"`
	SalePrice decimal.Decimal `json:"price_sale"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Unit:      p.Unit,
		SalePrice: p.SalePrice,
		VATRate:   p.VATRate,
		CreatedAt: p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
