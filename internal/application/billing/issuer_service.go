package billing

import (
	"context"

	"github.com/factura/backend/internal/domain/billing"
)

// IssuerService manages the single issuer profile
type IssuerService struct {
	issuerRepo billing.IssuerProfileRepository
}

// NewIssuerService creates a new issuer service
func NewIssuerService(issuerRepo billing.IssuerProfileRepository) *IssuerService {
	return &IssuerService{
		issuerRepo: issuerRepo,
	}
}

// GetProfile returns the issuer profile, falling back to the built-in default
// when none was ever saved
func (s *IssuerService) GetProfile(ctx context.Context) (*IssuerProfileResponse, error) {
	profile, err := s.issuerRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	response := ToIssuerProfileResponse(profile)
	return &response, nil
}

// UpdateProfile replaces the issuer profile. Already issued invoices are not
// touched; they render against whatever the profile says at print time.
func (s *IssuerService) UpdateProfile(ctx context.Context, req UpdateIssuerProfileRequest) (*IssuerProfileResponse, error) {
	profile, err := s.issuerRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.NIT = req.NIT
	profile.Address = req.Address
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Resolution = req.Resolution

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.issuerRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToIssuerProfileResponse(profile)
	return &response, nil
}
