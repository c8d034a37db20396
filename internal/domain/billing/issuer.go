package billing

import (
	"context"
	"time"

	"github.com/factura/backend/internal/domain/shared"
)

// IssuerProfile is the invoicing party's own business identity. Unlike the
// customer snapshot, invoices never embed it: rendered documents re-read the
// live profile, so edits apply retroactively to every printout.
type IssuerProfile struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	NIT        string    `gorm:"type:varchar(50);not null" json:"nit"`
	Address    string    `gorm:"type:varchar(500)" json:"address"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Email      string    `gorm:"type:varchar(200)" json:"email"`
	Resolution string    `gorm:"type:varchar(300)" json:"resolution"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName returns the table name for GORM
func (IssuerProfile) TableName() string {
	return "issuer_profile"
}

// DefaultIssuerProfile returns the profile used until the user configures one
func DefaultIssuerProfile() IssuerProfile {
	return IssuerProfile{
		Name:       "Ruby Rose & Trendy",
		NIT:        "900.000.001-0",
		Address:    "Oficina Principal",
		Phone:      "300-000-0000",
		Email:      "facturacion@rubyrosetrendy.com",
		Resolution: "Res. XXXXXX · Rango: 0001 – 1000 · Vigencia: 2024 – 2026",
	}
}

// Validate checks the profile's required fields
func (p *IssuerProfile) Validate() error {
	if p.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Issuer name cannot be empty")
	}
	if p.NIT == "" {
		return shared.NewDomainError("INVALID_NIT", "Issuer NIT cannot be empty")
	}
	return nil
}

// IssuerProfileRepository persists the single issuer profile row
type IssuerProfileRepository interface {
	// Get returns the stored profile, or the default one if never saved
	Get(ctx context.Context) (*IssuerProfile, error)

	// Save stores the profile
	Save(ctx context.Context, profile *IssuerProfile) error
}
