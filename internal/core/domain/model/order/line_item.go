package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a PricedLineItem was not created
// through the NewPricedLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("PricedLineItem must be created via NewPricedLineItem constructor")

// PricedLineItem is a value object holding one purchased product position.
// Product name, unit price, and image reference are snapshots taken at
// order-creation time and never re-resolved, so the order remains readable
// even if the catalog product is later altered or deleted.
//
// Invariants: quantity >= 1, unit price >= 0 (the price already includes the
// per-unit discount, rounded to 2 decimal places).
type PricedLineItem struct {
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	color       string
	size        string
	imageRef    string

	guard guard.ConstructorGuard
}

// NewPricedLineItem creates a validated line item.
// Color, size, and imageRef are optional variant/display attributes.
func NewPricedLineItem(
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	color, size, imageRef string,
) (PricedLineItem, error) {
	if err := productID.Validate(); err != nil {
		return PricedLineItem{}, err
	}
	if productName == "" {
		return PricedLineItem{}, errs.NewValueIsRequiredError("productName")
	}
	if err := unitPrice.Validate(); err != nil {
		return PricedLineItem{}, err
	}
	if quantity < 1 {
		return PricedLineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	if quantity > maxLineQuantity {
		return PricedLineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return PricedLineItem{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		color:       color,
		size:        size,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// maxLineQuantity caps a single line position. Orders beyond this size go
// through a separate wholesale channel.
const maxLineQuantity = 10000

// Validate ensures the line item was created through NewPricedLineItem.
func (li PricedLineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog reference of the purchased product.
func (li PricedLineItem) ProductID() kernel.UUID { return li.productID }

// ProductName returns the product name snapshot.
func (li PricedLineItem) ProductName() string { return li.productName }

// UnitPrice returns the discounted per-unit price snapshot.
func (li PricedLineItem) UnitPrice() kernel.Money { return li.unitPrice }

// Quantity returns the purchased quantity.
func (li PricedLineItem) Quantity() int { return li.quantity }

// Color returns the chosen color variant. May be empty.
func (li PricedLineItem) Color() string { return li.color }

// Size returns the chosen size variant. May be empty.
func (li PricedLineItem) Size() string { return li.size }

// ImageRef returns the product image reference snapshot. May be empty.
func (li PricedLineItem) ImageRef() string { return li.imageRef }

// LineTotal returns unit price multiplied by quantity.
func (li PricedLineItem) LineTotal() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}
