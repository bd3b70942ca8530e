package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrCheckoutKeyAlreadyUsed signals that another transaction recorded the
// same idempotency key first. The caller should look up the winner's order
// and return it instead of failing the request.
var ErrCheckoutKeyAlreadyUsed = errors.New("checkout key already used")

// CheckoutKeyRepository persists idempotency keys for checkout attempts.
// A key row is written in the same transaction as the order it produced, so
// a retried submission of the same checkout intent finds the key and returns
// the original order instead of creating a second one.
type CheckoutKeyRepository interface {
	// Add records the binding key -> orderID. The key column is unique;
	// a concurrent duplicate insert returns ErrCheckoutKeyAlreadyUsed.
	Add(ctx context.Context, key string, orderID kernel.UUID) error

	// GetOrderID resolves a previously recorded key to its order id.
	// Returns errs.ErrObjectNotFound when the key was never used.
	GetOrderID(ctx context.Context, key string) (kernel.UUID, error)
}
