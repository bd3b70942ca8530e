// Package product provides the read model of the external product catalog as
// seen by the order core. The catalog itself is managed elsewhere; the core
// only reads it to price carts and to reserve stock at checkout.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned by stock reservation when fewer units
	// remain than the checkout requests.
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// Product is the catalog view consumed by the cart aggregator: list price,
// percentage discount, display attributes, and the advisory stock level.
//
// The stock value is a point-in-time snapshot used for display clamping only;
// the authoritative stock check happens as an atomic reservation inside the
// checkout transaction.
type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	discount float64
	imageRef string
	stock    int

	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog read model entry.
// Discount is a percentage in [0, 100]; stock must be non-negative.
func NewProduct(id kernel.UUID, name string, price kernel.Money, discount float64, imageRef string, stock int) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return Product{}, err
	}
	if discount < 0 || discount > 100 {
		return Product{}, errs.NewValueIsOutOfRangeError("discount", discount, 0, 100)
	}
	if stock < 0 {
		return Product{}, errs.NewValueIsInvalidError("stock must not be negative")
	}

	return Product{
		id:       id,
		name:     name,
		price:    price,
		discount: discount,
		imageRef: imageRef,
		stock:    stock,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the catalog identifier.
func (p Product) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Price returns the undiscounted list price.
func (p Product) Price() kernel.Money { return p.price }

// Discount returns the percentage discount in [0, 100].
func (p Product) Discount() float64 { return p.discount }

// ImageRef returns the primary image reference. May be empty.
func (p Product) ImageRef() string { return p.imageRef }

// Stock returns the advisory stock level at read time.
func (p Product) Stock() int { return p.stock }

// DiscountedPrice returns the effective per-unit price after the percentage
// discount, rounded to 2 decimal places.
func (p Product) DiscountedPrice() kernel.Money {
	return p.price.ApplyDiscountPercent(p.discount)
}
