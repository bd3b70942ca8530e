package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	customer := testCustomer(t)
	lines := []services.CartLine{testCartLine(t, kernel.NewUUID(), 2)}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(customer, lines, order.Express, "card", "idem-123")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.Express, cmd.ShippingMethod())
		assert.Equal(t, "card", cmd.PaymentMethod())
		assert.Equal(t, "idem-123", cmd.IdempotencyKey())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("empty_idempotency_key_is_allowed", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(customer, lines, order.Standard, "card", "")
		require.NoError(t, err)
		assert.Empty(t, cmd.IdempotencyKey())
	})

	t.Run("rejects_empty_cart", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(customer, nil, order.Standard, "card", "")
		require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	})

	t.Run("rejects_unconstructed_line", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			customer, []services.CartLine{{}}, order.Standard, "card", "",
		)
		require.ErrorIs(t, err, services.ErrCartLineIsNotConstructed)
	})

	t.Run("rejects_unconstructed_customer", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(order.CustomerSnapshot{}, lines, order.Standard, "card", "")
		require.Error(t, err)
	})

	t.Run("rejects_unknown_shipping_method", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(customer, lines, order.UnknownShippingMethod, "card", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_payment_method", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(customer, lines, order.Standard, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
