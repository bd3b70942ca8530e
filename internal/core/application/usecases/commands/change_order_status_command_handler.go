package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles lifecycle transitions of orders.
// Loads the aggregate, applies the transition through the domain state graph,
// and persists the result with a compare-and-swap on the version the caller
// read.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Processing, 0)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionConflict) {
//	    // a concurrent writer won; re-read the order and retry
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
//
// Concurrency contract: the write only applies when the stored version still
// equals the command's expected version. A stale expected version fails with
// errs.ErrVersionConflict before any state is touched. Requesting the status
// the order already has succeeds without a write and without a version bump.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	changed, err := aggregate.TransitionTo(cmd.Status())
	if err != nil {
		return nil, err
	}

	if !changed {
		return aggregate, nil
	}

	if aggregate.Status() == order.Cancelled {
		if err = releaseReservedStock(ctx, uow.ProductCatalog(), aggregate); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.UpdateVersioned(ctx, aggregate, cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// releaseReservedStock returns each line item's reserved units to the catalog.
// Run inside the cancellation transaction so the order write and the stock
// compensation commit or roll back together.
func releaseReservedStock(ctx context.Context, catalog ports.ProductCatalog, aggregate *order.Order) error {
	for _, item := range aggregate.Items() {
		if err := catalog.ReleaseStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
