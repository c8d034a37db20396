package partner

import (
	"context"

	"github.com/factura/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business logic
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.CompanyName, req.NIT)
	if err != nil {
		return nil, err
	}

	if err := customer.SetContact(req.Email, req.Phone, req.Address, req.Website); err != nil {
		return nil, err
	}
	customer.SetLegalInfo(req.LegalRepresentative, req.EconomicActivity)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// ListCustomers retrieves all customers
func (s *CustomerService) ListCustomers(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToCustomerResponses(customers), nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	companyName := customer.CompanyName
	if req.CompanyName != nil {
		companyName = *req.CompanyName
	}
	nit := customer.NIT
	if req.NIT != nil {
		nit = *req.NIT
	}
	if err := customer.Update(companyName, nit); err != nil {
		return nil, err
	}

	email := customer.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := customer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	address := customer.Address
	if req.Address != nil {
		address = *req.Address
	}
	website := customer.Website
	if req.Website != nil {
		website = *req.Website
	}
	if err := customer.SetContact(email, phone, address, website); err != nil {
		return nil, err
	}

	legalRepresentative := customer.LegalRepresentative
	if req.LegalRepresentative != nil {
		legalRepresentative = *req.LegalRepresentative
	}
	economicActivity := customer.EconomicActivity
	if req.EconomicActivity != nil {
		economicActivity = *req.EconomicActivity
	}
	customer.SetLegalInfo(legalRepresentative, economicActivity)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// DeleteCustomer deletes a customer. Invoices keep their embedded snapshot,
// so deleting a customer never mutates issued documents.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
