// Package ports defines repository interfaces for the order core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order record is the only shared mutable resource in the system; all
// writes go through this interface as single-document, version-checked
// operations.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateVersioned persists changes to an existing order aggregate with a
	// compare-and-swap on the version column: the write only applies if the
	// stored version still equals expectedVersion (the version the caller
	// read before mutating the aggregate).
	//
	// Returns:
	//   - errs.ErrVersionConflict when the row exists at a different version
	//     (a concurrent writer won; the caller must re-read and retry)
	//   - errs.ErrObjectNotFound when the order does not exist at all
	UpdateVersioned(ctx context.Context, aggregate *order.Order, expectedVersion int) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all line items and the customer snapshot.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatusBefore retrieves orders still in Pending status
	// whose last update is older than the cutoff. Used by the stale-order
	// cancellation job.
	GetAllInPendingStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
