package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to bind a delivery courier to an
// order. The binding is one-time: once a courier is recorded the order keeps
// that courier for the rest of its life.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, courierID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	courierID       kernel.UUID
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign a courier to an order.
// Validates that both identifiers are valid and the expected version is
// non-negative.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	expectedVersion int,
) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setCourierID(courierID),
		assignCommand.setExpectedVersion(expectedVersion),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier to bind.
func (c AssignOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// ExpectedVersion returns the aggregate version the caller read.
func (c AssignOrderCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AssignOrderCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
