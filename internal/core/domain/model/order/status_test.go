package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.Processing, "processing"},
		{order.Shipped, "shipped"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %d renders as %s", int(tc.status), tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all wire representations", func(t *testing.T) {
		for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Pending", "done", "in_progress"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err, "input %q", s)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	type edge struct {
		from order.Status
		to   order.Status
	}

	legal := []edge{
		{order.Pending, order.Processing},
		{order.Pending, order.Cancelled},
		{order.Processing, order.Shipped},
		{order.Processing, order.Cancelled},
		{order.Shipped, order.Delivered},
		{order.Shipped, order.Cancelled},
	}

	t.Run("allows every edge of the state graph", func(t *testing.T) {
		for _, e := range legal {
			t.Run(fmt.Sprintf("%s to %s", e.from, e.to), func(t *testing.T) {
				next, err := e.from.TransitionTo(e.to)
				require.NoError(t, err)
				assert.Equal(t, e.to, next)
			})
		}
	})

	t.Run("same-state transition is a no-op success", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled} {
			next, err := s.TransitionTo(s)
			require.NoError(t, err)
			assert.Equal(t, s, next)
		}
	})

	t.Run("rejects every non-edge", func(t *testing.T) {
		all := []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled}
		isLegal := func(from, to order.Status) bool {
			for _, e := range legal {
				if e.from == from && e.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range all {
			for _, to := range all {
				if from == to || isLegal(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)
					require.ErrorIs(t, err, order.ErrIllegalTransition)
				})
			}
		}
	})

	t.Run("delivered to pending is illegal", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Pending)
		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}
