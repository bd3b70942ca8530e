package services_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Get(ctx context.Context, id kernel.UUID) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductCatalog) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductCatalog) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func catalogProduct(t *testing.T, id kernel.UUID, price float64, discount float64) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Trail Runner", kernel.NewMoneyFromFloat(price), discount, "img/trail.png", 50)
	require.NoError(t, err)
	return p
}

func TestNewCartLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		line, err := services.NewCartLine(kernel.NewUUID(), 2, "blue", "42")
		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, "blue", line.Color())
		assert.Equal(t, "42", line.Size())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := services.NewCartLine(kernel.NewUUID(), 0, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_product_id", func(t *testing.T) {
		_, err := services.NewCartLine(kernel.UUID{}, 1, "", "")
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var line services.CartLine
		require.ErrorIs(t, line.Validate(), services.ErrCartLineIsNotConstructed)
	})
}

func TestCartAggregator_Aggregate(t *testing.T) {
	ctx := t.Context()

	t.Run("snapshots_discounted_price_and_product_data", func(t *testing.T) {
		productID := kernel.NewUUID()
		catalog := new(MockProductCatalog)
		catalog.On("Get", ctx, productID).Return(catalogProduct(t, productID, 100, 10), nil).Once()

		line, err := services.NewCartLine(productID, 2, "blue", "42")
		require.NoError(t, err)

		items, err := services.NewCartAggregator(catalog).Aggregate(ctx, []services.CartLine{line})
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.True(t, items[0].ProductID().IsEqual(productID))
		assert.Equal(t, "Trail Runner", items[0].ProductName())
		assert.Equal(t, "90.00", items[0].UnitPrice().String())
		assert.Equal(t, "180.00", items[0].LineTotal().String())
		assert.Equal(t, "blue", items[0].Color())
		assert.Equal(t, "42", items[0].Size())
		assert.Equal(t, "img/trail.png", items[0].ImageRef())
		catalog.AssertExpectations(t)
	})

	t.Run("empty_cart", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		_, err := services.NewCartAggregator(catalog).Aggregate(ctx, nil)
		require.ErrorIs(t, err, services.ErrEmptyCart)
	})

	t.Run("unresolved_product", func(t *testing.T) {
		productID := kernel.NewUUID()
		catalog := new(MockProductCatalog)
		catalog.On("Get", ctx, productID).
			Return(product.Product{}, errs.NewObjectNotFoundError("productID", productID)).Once()

		line, err := services.NewCartLine(productID, 1, "", "")
		require.NoError(t, err)

		_, err = services.NewCartAggregator(catalog).Aggregate(ctx, []services.CartLine{line})
		require.ErrorIs(t, err, services.ErrUnresolvedProduct)
		catalog.AssertExpectations(t)
	})

	t.Run("catalog_failure_passes_through", func(t *testing.T) {
		productID := kernel.NewUUID()
		ioErr := errors.New("connection reset")
		catalog := new(MockProductCatalog)
		catalog.On("Get", ctx, productID).Return(product.Product{}, ioErr).Once()

		line, err := services.NewCartLine(productID, 1, "", "")
		require.NoError(t, err)

		_, err = services.NewCartAggregator(catalog).Aggregate(ctx, []services.CartLine{line})
		require.ErrorIs(t, err, ioErr)
	})

	t.Run("unconstructed_line_is_rejected", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		_, err := services.NewCartAggregator(catalog).Aggregate(ctx, []services.CartLine{{}})
		require.ErrorIs(t, err, services.ErrCartLineIsNotConstructed)
	})
}
