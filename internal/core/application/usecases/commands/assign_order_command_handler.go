package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// AssignOrderCommandHandler handles courier assignment.
// Loads the aggregate, applies the one-time courier binding, and persists the
// result with a compare-and-swap on the version the caller read.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(orderID, courierID, 1)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyAssigned) {
//	    // the order already has a courier; the binding never changes
//	}
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for courier assignment.
// Requires an OrderUoWFactory for transactional persistence.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the updated order.
// Assignment does not change the order status; it only records the courier
// and bumps the version.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Version() != cmd.ExpectedVersion() {
		return nil, errs.NewVersionConflictError("order", cmd.OrderID(), cmd.ExpectedVersion())
	}

	if err = aggregate.Assign(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateVersioned(ctx, aggregate, cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
