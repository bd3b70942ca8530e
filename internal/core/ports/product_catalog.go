package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductCatalog is the read-and-reserve contract to the external product
// catalog. The order core never manages products; it resolves them to price
// carts and atomically reserves stock during checkout.
type ProductCatalog interface {
	// Get resolves a product by its catalog identifier.
	// Returns errs.ErrObjectNotFound when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (product.Product, error)

	// ReserveStock atomically decrements the product's stock by quantity.
	// The decrement only applies when enough stock remains; otherwise
	// product.ErrInsufficientStock is returned and nothing changes.
	// Called inside the checkout transaction so the reservation commits or
	// rolls back together with the order.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock atomically returns quantity units to the product's stock.
	// The compensating write for ReserveStock: called inside the cancellation
	// transaction so cancelled orders give their reserved units back.
	// Returns errs.ErrObjectNotFound when the product no longer exists.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
