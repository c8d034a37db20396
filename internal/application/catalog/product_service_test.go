package catalog

import (
	"context"
	"testing"

	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/shared"
	"github.com/factura/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ReplaceAll(ctx context.Context, products []catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func TestProductService_Create(t *testing.T) {
	t.Run("creates and saves", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateProductRequest{
			Name:      "POLVO SUELTO MELU",
			SKU:       "MEL-120",
			SalePrice: 14000,
		})

		require.NoError(t, err)
		assert.Equal(t, "POLVO SUELTO MELU", resp.Name)
		assert.Equal(t, "UND", resp.Unit)
		assert.True(t, resp.VATRate.Equal(catalog.StandardVATRate))
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid product", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		_, err := svc.Create(context.Background(), CreateProductRequest{Name: ""})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("surfaces persistence failure", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)
		repo.On("Save", mock.Anything, mock.Anything).Return(assertableErr)

		_, err := svc.Create(context.Background(), CreateProductRequest{Name: "X", SalePrice: 1})

		assert.ErrorIs(t, err, assertableErr)
	})
}

var assertableErr = shared.NewDomainError("PERSISTENCE", "write failed")

func TestProductService_Update(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo)

	existing, err := catalog.NewProduct("OLD", "OLD-1", "UND", valueobject.NewMoneyCOPFromFloat(1000))
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	newName := "NEW"
	newPrice := 2500.0
	resp, err := svc.Update(context.Background(), existing.ID, UpdateProductRequest{
		Name:      &newName,
		SalePrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "NEW", resp.Name)
	assert.Equal(t, "OLD-1", resp.SKU)
	assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(2500)))
	repo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo)
	id := uuid.New()

	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
}
