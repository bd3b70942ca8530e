package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsEmpty = errors.New("checkout requires at least one cart line")
)

// CheckoutCommand represents a request to convert a customer's cart into an
// order. Carries the customer snapshot, the cart lines, the chosen shipping
// and payment options, and an optional idempotency key that makes retried
// submissions return the originally created order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customer, lines, order.Standard, "card", idemKey)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, services.NewPricingCalculator())
//	created, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customer       order.CustomerSnapshot
	lines          []services.CartLine
	shippingMethod order.ShippingMethod
	paymentMethod  string
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to run a checkout.
// Validates that the customer snapshot is complete, the cart has at least one
// constructed line, and the shipping and payment methods are present.
// The idempotency key is optional; an empty key disables replay detection.
func NewCheckoutCommand(
	customer order.CustomerSnapshot,
	lines []services.CartLine,
	shippingMethod order.ShippingMethod,
	paymentMethod string,
	idempotencyKey string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomer(customer),
		checkoutCommand.setLines(lines),
		checkoutCommand.setShippingMethod(shippingMethod),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Customer returns the customer contact/address snapshot.
func (c CheckoutCommand) Customer() order.CustomerSnapshot {
	return c.customer
}

// Lines returns a copy of the cart lines.
func (c CheckoutCommand) Lines() []services.CartLine {
	return append([]services.CartLine(nil), c.lines...)
}

// ShippingMethod returns the chosen delivery option.
func (c CheckoutCommand) ShippingMethod() order.ShippingMethod {
	return c.shippingMethod
}

// PaymentMethod returns the payment descriptor.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// IdempotencyKey returns the client-supplied replay key. May be empty.
func (c CheckoutCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CheckoutCommand) setCustomer(customer order.CustomerSnapshot) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CheckoutCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = append([]services.CartLine(nil), lines...)
	return nil
}

func (c *CheckoutCommand) setShippingMethod(shippingMethod order.ShippingMethod) error {
	if err := shippingMethod.Validate(); err != nil {
		return err
	}

	c.shippingMethod = shippingMethod
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}
