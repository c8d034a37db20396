package partner

import (
	"time"

	"github.com/factura/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	CompanyName         string `json:"company_name" binding:"required,min=1,max=200"`
	NIT                 string `json:"nit" binding:"required,min=1,max=50"`
	Email               string `json:"email" binding:"omitempty,max=200"`
	Phone               string `json:"phone" binding:"max=50"`
	Address             string `json:"address" binding:"max=500"`
	Website             string `json:"website" binding:"max=200"`
	LegalRepresentative string `json:"legal_representative" binding:"max=200"`
	EconomicActivity    string `json:"economic_activity" binding:"max=200"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	CompanyName         *string `json:"company_name" binding:"omitempty,min=1,max=200"`
	NIT                 *string `json:"nit" binding:"omitempty,min=1,max=50"`
	Email               *string `json:"email" binding:"omitempty,max=200"`
	Phone               *string `json:"phone" binding:"omitempty,max=50"`
	Address             *string `json:"address" binding:"omitempty,max=500"`
	Website             *string `json:"website" binding:"omitempty,max=200"`
	LegalRepresentative *string `json:"legal_representative" binding:"omitempty,max=200"`
	EconomicActivity    *string `json:"economic_activity" binding:"omitempty,max=200"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
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

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
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

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
