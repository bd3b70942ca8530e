package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrOverrideOrderStatusCommandIsNotConstructed = errors.New(
	"OverrideOrderStatusCommand must be created via NewOverrideOrderStatusCommand constructor",
)

// OverrideOrderStatusCommand represents an administrative request to set an
// order's status directly, bypassing the lifecycle state graph. Used to
// correct orders, e.g. pulling a prematurely delivered order back to
// processing.
type OverrideOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	status          order.Status
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewOverrideOrderStatusCommand creates a command to force an order status.
// Validates that the order ID is valid, the target status is a known state,
// and the expected version is non-negative.
func NewOverrideOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	expectedVersion int,
) (OverrideOrderStatusCommand, error) {
	overrideCommand := OverrideOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		overrideCommand.setOrderID(orderID),
		overrideCommand.setStatus(status),
		overrideCommand.setExpectedVersion(expectedVersion),
	); err != nil {
		return OverrideOrderStatusCommand{}, err
	}

	return overrideCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOverrideOrderStatusCommandIsNotConstructed if validation fails.
func (c OverrideOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to correct.
func (c OverrideOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status to force.
func (c OverrideOrderStatusCommand) Status() order.Status {
	return c.status
}

// ExpectedVersion returns the aggregate version the caller read.
func (c OverrideOrderStatusCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *OverrideOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *OverrideOrderStatusCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
