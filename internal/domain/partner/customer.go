package partner

import (
	"time"

	"github.com/factura/backend/internal/domain/shared"
)

// Customer represents an invoice recipient.
// Invoices embed a point-in-time snapshot of these fields at creation, so a
// customer can be edited or deleted without altering historical invoices.
type Customer struct {
	shared.BaseEntity
	CompanyName         string `gorm:"type:varchar(200);not null" json:"company_name"`
	NIT                 string `gorm:"type:varchar(50);not null;index" json:"nit"`
	Email               string `gorm:"type:varchar(200)" json:"email"`
	Phone               string `gorm:"type:varchar(50)" json:"phone"`
	Address             string `gorm:"type:varchar(500)" json:"address"`
	Website             string `gorm:"type:varchar(200)" json:"website,omitempty"`
	LegalRepresentative string `gorm:"type:varchar(200)" json:"legal_representative,omitempty"`
	EconomicActivity    string `gorm:"type:varchar(200)" json:"economic_activity,omitempty"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(companyName, nit string) (*Customer, error) {
	if err := validateCompanyName(companyName); err != nil {
		return nil, err
	}
	if err := validateNIT(nit); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyName: companyName,
		NIT:         nit,
	}, nil
}

// Update updates the customer's identity fields
func (c *Customer) Update(companyName, nit string) error {
	if err := validateCompanyName(companyName); err != nil {
		return err
	}
	if err := validateNIT(nit); err != nil {
		return err
	}

	c.CompanyName = companyName
	c.NIT = nit
	c.UpdatedAt = time.Now()

	return nil
}

// SetContact sets the customer's contact fields
func (c *Customer) SetContact(email, phone, address, website string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Website = website
	c.UpdatedAt = time.Now()

	return nil
}

// SetLegalInfo sets the optional legal-representative and economic-activity metadata
func (c *Customer) SetLegalInfo(legalRepresentative, economicActivity string) {
	c.LegalRepresentative = legalRepresentative
	c.EconomicActivity = economicActivity
	c.UpdatedAt = time.Now()
}

// validateCompanyName validates the customer's legal/trade name
func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

// validateNIT validates the tax ID
func validateNIT(nit string) error {
	if nit == "" {
		return shared.NewDomainError("INVALID_NIT", "NIT cannot be empty")
	}
	if len(nit) > 50 {
		return shared.NewDomainError("INVALID_NIT", "NIT cannot exceed 50 characters")
	}
	return nil
}
