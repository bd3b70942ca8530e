package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order is created without any line items.
	ErrNoLineItems = errors.New("order must contain at least one line item")

	// ErrPaymentMethodIsRequired is returned when the payment method is empty.
	ErrPaymentMethodIsRequired = errors.New("payment method is required")

	// ErrAlreadyAssigned is returned when assigning a courier to an order that
	// already has one. Assignment is a one-time, first-writer-wins binding.
	ErrAlreadyAssigned = errors.New("order is already assigned to a courier")

	// ErrOrderNotAssignable is returned when assigning a courier to an order that
	// has not left the Pending state yet, or is already terminal.
	ErrOrderNotAssignable = errors.New("order status does not allow courier assignment")
)

// Order is the central aggregate representing a completed purchase. It is
// created exactly once at checkout and from then on mutated only through its
// lifecycle methods: TransitionTo / ForceStatus for the status field and
// Assign for the courier binding.
//
// Order follows these invariants:
//   - At least one line item; line items and the customer snapshot are immutable
//   - total = subtotal + shipping + tax (enforced by the Totals value object)
//   - status only advances along the legal state graph (see Status)
//   - the courier binding is set at most once and never changes status by itself
//   - version increases by exactly 1 on every mutation; the persistence layer
//     uses it as a compare-and-swap guard against stale concurrent writers
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the contact/address snapshot captured at checkout
	customer CustomerSnapshot

	// items is the ordered sequence of purchased positions (at least one)
	items []PricedLineItem

	// shippingMethod is the flat-fee delivery option chosen at checkout
	shippingMethod ShippingMethod

	// paymentMethod is the free-form payment descriptor supplied at checkout
	paymentMethod string

	// totals is the server-computed monetary breakdown
	totals Totals

	// status is the current state in the fulfillment lifecycle
	status Status

	// courierID is the assigned delivery actor's ID (nil if unassigned)
	courierID *kernel.UUID

	// createdAt / updatedAt are UTC timestamps of creation and last mutation
	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency counter, starting at 0
	version int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with version 0. This is the
// only way to create an order at checkout; all invariants are validated here,
// fail-fast, in the documented priority order:
//
//  1. customer snapshot required fields
//  2. at least one line item
//  3. every line item constructed (quantity >= 1, unit price >= 0)
//  4. shipping method and payment method present
//
// The totals must have been computed by the pricing calculator from the same
// line items; caller-supplied totals are never accepted here.
func NewOrder(
	id kernel.UUID,
	customer CustomerSnapshot,
	items []PricedLineItem,
	shippingMethod ShippingMethod,
	paymentMethod string,
	totals Totals,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := shippingMethod.Validate(); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		return nil, ErrPaymentMethodIsRequired
	}
	if err := totals.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:             id,
		customer:       customer,
		items:          append([]PricedLineItem(nil), items...),
		shippingMethod: shippingMethod,
		paymentMethod:  paymentMethod,
		totals:         totals,
		status:         Pending,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-validated so a corrupted row can never yield a usable aggregate.
func RestoreOrder(
	id kernel.UUID,
	customer CustomerSnapshot,
	items []PricedLineItem,
	shippingMethod ShippingMethod,
	paymentMethod string,
	totals Totals,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	restored, err := NewOrder(id, customer, items, shippingMethod, paymentMethod, totals)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		restored.courierID = &id
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	restored.status = status
	restored.createdAt = createdAt
	restored.updatedAt = updatedAt
	restored.version = version
	return restored, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer snapshot captured at checkout.
func (o *Order) Customer() CustomerSnapshot {
	return o.customer
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []PricedLineItem {
	return append([]PricedLineItem(nil), o.items...)
}

// ShippingMethod returns the delivery option chosen at checkout.
func (o *Order) ShippingMethod() ShippingMethod {
	return o.shippingMethod
}

// PaymentMethod returns the payment descriptor supplied at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Totals returns the monetary breakdown of the order.
func (o *Order) Totals() Totals {
	return o.totals
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the UTC timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order along the fulfillment state graph.
//
// Returns:
//   - (true, nil) when the status changed; updatedAt and version are bumped
//   - (false, nil) when newStatus equals the current status (no-op, no bump)
//   - (false, ErrIllegalTransition) when the edge is not in the graph,
//     including any transition out of a terminal state
func (o *Order) TransitionTo(newStatus Status) (bool, error) {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return false, err
	}
	if next == o.status {
		return false, nil
	}

	o.status = next
	o.touch()
	return true, nil
}

// ForceStatus sets the status without consulting the state graph. This is the
// administrative override capability for correcting orders, e.g. pulling a
// prematurely delivered order back to processing. It still bumps the version,
// so concurrent force-writes serialize through the same compare-and-swap as
// normal transitions. Forcing the current status is a no-op.
func (o *Order) ForceStatus(newStatus Status) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	o.touch()
	return true, nil
}

// Assign binds a delivery courier to the order.
//
// Business rules:
//   - The binding is one-time: a second call fails with ErrAlreadyAssigned
//     and leaves the existing binding untouched
//   - Orders still in Pending, or already terminal, are not assignable
//   - Assignment does not change the order status; moving the order further
//     along the lifecycle is a separate transition call
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrAlreadyAssigned
	}
	if o.status == Pending || o.status.IsTerminal() {
		return ErrOrderNotAssignable
	}

	o.courierID = &courierID
	o.touch()
	return nil
}

// touch records a mutation: bumps the version and refreshes updatedAt.
func (o *Order) touch() {
	o.version++
	o.updatedAt = time.Now().UTC()
}
