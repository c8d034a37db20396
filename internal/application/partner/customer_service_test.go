package partner

import (
	"context"
	"testing"

	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ReplaceAll(ctx context.Context, customers []partner.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	t.Run("creates customer with contact and legal info", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
			CompanyName:         "VelvetGlow Cosmetics SAS",
			NIT:                 "894577890-4",
			Email:               "compras@velvetglow.co",
			Phone:               "+57 301 555 0147",
			Address:             "Cra 15 # 93-60, Bogota",
			LegalRepresentative: "Mariana Quintero",
			EconomicActivity:    "4645 - Comercio al por mayor de cosmeticos",
		})

		require.NoError(t, err)
		assert.Equal(t, "VelvetGlow Cosmetics SAS", resp.CompanyName)
		assert.Equal(t, "894577890-4", resp.NIT)
		assert.Equal(t, "Mariana Quintero", resp.LegalRepresentative)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty company name without persisting", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		_, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
			CompanyName: "",
			NIT:         "894577890-4",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("surfaces persistence failure", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		writeErr := shared.NewDomainError("PERSISTENCE", "write failed")
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(writeErr)

		_, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
			CompanyName: "VelvetGlow Cosmetics SAS",
			NIT:         "894577890-4",
		})

		assert.Equal(t, writeErr, err)
	})
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		existing, err := partner.NewCustomer("VelvetGlow Cosmetics SAS", "894577890-4")
		require.NoError(t, err)
		require.NoError(t, existing.SetContact("compras@velvetglow.co", "+57 301 555 0147", "Cra 15 # 93-60, Bogota", ""))

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Save", mock.Anything, existing).Return(nil)

		newPhone := "+57 310 555 2200"
		resp, err := service.UpdateCustomer(context.Background(), existing.ID, UpdateCustomerRequest{
			Phone: &newPhone,
		})

		require.NoError(t, err)
		assert.Equal(t, "VelvetGlow Cosmetics SAS", resp.CompanyName)
		assert.Equal(t, "compras@velvetglow.co", resp.Email)
		assert.Equal(t, newPhone, resp.Phone)
		repo.AssertExpectations(t)
	})

	t.Run("returns not found from repository", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.UpdateCustomer(context.Background(), id, UpdateCustomerRequest{})

		assert.Equal(t, shared.ErrNotFound, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	t.Run("deletes existing customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		existing, err := partner.NewCustomer("VelvetGlow Cosmetics SAS", "894577890-4")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Delete", mock.Anything, existing.ID).Return(nil)

		require.NoError(t, service.DeleteCustomer(context.Background(), existing.ID))
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := service.DeleteCustomer(context.Background(), id)

		assert.Equal(t, shared.ErrNotFound, err)
		repo.AssertNotCalled(t, "Delete")
	})
}
