package services

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrEmptyCart is returned when a checkout arrives without any cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnresolvedProduct is returned when a cart line references a product
	// the catalog cannot resolve.
	ErrUnresolvedProduct = errors.New("cart references an unresolved product")

	// ErrCartLineIsNotConstructed is returned when a CartLine was not created
	// through the NewCartLine constructor.
	ErrCartLineIsNotConstructed = errors.New("CartLine must be created via NewCartLine constructor")
)

// CartLine is one transient, client-supplied cart position: a product
// reference with a quantity and an optional variant selection. Cart lines
// have no server-side identity; they live only for the duration of a
// checkout call.
type CartLine struct {
	productID kernel.UUID
	quantity  int
	color     string
	size      string

	guard guard.ConstructorGuard
}

// NewCartLine creates a validated cart line. Quantity must be at least 1;
// color and size are optional variant attributes.
func NewCartLine(productID kernel.UUID, quantity int, color, size string) (CartLine, error) {
	if err := productID.Validate(); err != nil {
		return CartLine{}, err
	}
	if quantity < 1 {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return CartLine{
		productID: productID,
		quantity:  quantity,
		color:     color,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the cart line was created through NewCartLine.
func (l CartLine) Validate() error {
	return l.guard.Validate(ErrCartLineIsNotConstructed)
}

// ProductID returns the referenced catalog product.
func (l CartLine) ProductID() kernel.UUID { return l.productID }

// Quantity returns the requested quantity.
func (l CartLine) Quantity() int { return l.quantity }

// Color returns the chosen color variant. May be empty.
func (l CartLine) Color() string { return l.color }

// Size returns the chosen size variant. May be empty.
func (l CartLine) Size() string { return l.size }

// CartAggregator is a domain service that resolves client cart lines into
// priced line items by fetching authoritative product data from the catalog.
//
// The aggregator is read-only: it snapshots the product name, discounted
// unit price, and image reference at resolution time so the resulting order
// stays readable even if the product is later altered or deleted. Stock is
// not checked here; the authoritative stock reservation happens inside the
// checkout transaction.
type CartAggregator struct {
	catalog ports.ProductCatalog
}

// NewCartAggregator creates a CartAggregator backed by the given catalog.
func NewCartAggregator(catalog ports.ProductCatalog) CartAggregator {
	return CartAggregator{catalog: catalog}
}

// Aggregate resolves the cart lines into priced line items.
//
// Returns:
//   - ErrEmptyCart when lines is empty
//   - ErrUnresolvedProduct when any product id cannot be resolved
//   - the catalog's error verbatim on I/O failure
func (a CartAggregator) Aggregate(ctx context.Context, lines []CartLine) ([]order.PricedLineItem, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]order.PricedLineItem, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}

		resolved, err := a.catalog.Get(ctx, line.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedProduct, line.ProductID())
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewPricedLineItem(
			resolved.ID(),
			resolved.Name(),
			resolved.DiscountedPrice(),
			line.Quantity(),
			line.Color(),
			line.Size(),
			resolved.ImageRef(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
