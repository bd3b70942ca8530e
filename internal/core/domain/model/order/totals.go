package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	// ErrTotalsAreNotConstructed is returned when Totals were not created
	// through the NewTotals or RestoreTotals constructors.
	ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals constructor")

	// ErrTotalsAreInconsistent is returned when a restored total does not equal
	// subtotal + shipping + tax.
	ErrTotalsAreInconsistent = errors.New("total must equal subtotal + shipping + tax")
)

// Totals is a value object holding the monetary breakdown of an order.
// The invariant total = subtotal + shipping + tax always holds: NewTotals
// computes the total itself, and RestoreTotals verifies it.
type Totals struct {
	subtotal kernel.Money
	shipping kernel.Money
	tax      kernel.Money
	total    kernel.Money

	guard guard.ConstructorGuard
}

// NewTotals creates a Totals value, computing total = subtotal + shipping + tax.
func NewTotals(subtotal, shipping, tax kernel.Money) (Totals, error) {
	if err := errors.Join(subtotal.Validate(), shipping.Validate(), tax.Validate()); err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal: subtotal,
		shipping: shipping,
		tax:      tax,
		total:    subtotal.Add(shipping).Add(tax),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreTotals reconstructs Totals from persistence and verifies the
// total-consistency invariant.
func RestoreTotals(subtotal, shipping, tax, total kernel.Money) (Totals, error) {
	totals, err := NewTotals(subtotal, shipping, tax)
	if err != nil {
		return Totals{}, err
	}
	if !totals.total.IsEqual(total) {
		return Totals{}, fmt.Errorf("%w: got %s, computed %s", ErrTotalsAreInconsistent, total, totals.total)
	}
	return totals, nil
}

// Validate ensures the totals were created through a constructor.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// Subtotal returns the sum of all line totals.
func (t Totals) Subtotal() kernel.Money { return t.subtotal }

// Shipping returns the flat shipping fee.
func (t Totals) Shipping() kernel.Money { return t.shipping }

// Tax returns the tax charge.
func (t Totals) Tax() kernel.Money { return t.tax }

// Total returns subtotal + shipping + tax.
func (t Totals) Total() kernel.Money { return t.total }
