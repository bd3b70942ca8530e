package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CheckoutCommandHandler handles the business logic for checkout.
// Resolves the cart against the product catalog, computes the authoritative
// totals server-side, reserves stock, and persists the new order in a single
// transaction.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, services.NewPricingCalculator())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s created with total %s", created.ID(), created.Totals().Total())
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    services.PricingCalculator
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence and a
// PricingCalculator for the totals computation.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricing services.PricingCalculator,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the checkout command and returns the created order.
//
// The flow inside one transaction:
//  1. If an idempotency key is present and already recorded, the original
//     order is returned and nothing new is created.
//  2. Cart lines are resolved to priced line items through the catalog.
//  3. Totals are computed from the resolved items; client-supplied amounts
//     are never trusted.
//  4. Stock is reserved per line; insufficient stock aborts the checkout.
//  5. The order, and the idempotency key if present, are persisted together.
//     Losing a concurrent race on the key rolls this attempt back and
//     returns the winner's order instead.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
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

	if cmd.IdempotencyKey() != "" {
		existing, err := h.findReplayed(ctx, uow, orderRepo, cmd.IdempotencyKey())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	catalog := uow.ProductCatalog()
	items, err := services.NewCartAggregator(catalog).Aggregate(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	totals, err := h.pricing.Calculate(items, cmd.ShippingMethod())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Customer(),
		items,
		cmd.ShippingMethod(),
		cmd.PaymentMethod(),
		totals,
	)
	if err != nil {
		return nil, err
	}

	for _, line := range cmd.Lines() {
		if err = catalog.ReserveStock(ctx, line.ProductID(), line.Quantity()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if cmd.IdempotencyKey() != "" {
		if err = uow.CheckoutKeyRepository().Add(ctx, cmd.IdempotencyKey(), created.ID()); err != nil {
			if errors.Is(err, ports.ErrCheckoutKeyAlreadyUsed) {
				return h.replayAfterLostRace(ctx, uow, cmd.IdempotencyKey())
			}
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// findReplayed checks whether the idempotency key was already used and, if so,
// loads the order it produced. Returns (nil, nil) when the key is fresh.
func (h *CheckoutCommandHandler) findReplayed(
	ctx context.Context,
	uow CheckoutUoW,
	orderRepo ports.OrderRepository,
	key string,
) (*order.Order, error) {
	orderID, err := uow.CheckoutKeyRepository().GetOrderID(ctx, key)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return orderRepo.Get(ctx, orderID)
}

// replayAfterLostRace resolves a checkout that lost the idempotency key race:
// a concurrent request with the same key inserted its row first. The losing
// transaction is rolled back and the winner's order is read back in a fresh
// transaction. If the winner has not committed yet its key row is invisible;
// the race error is surfaced so the client can retry.
func (h *CheckoutCommandHandler) replayAfterLostRace(
	ctx context.Context,
	lost TxManager,
	key string,
) (*order.Order, error) {
	_ = lost.Rollback(ctx)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := h.findReplayed(ctx, uow, uow.OrderRepository(), key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ports.ErrCheckoutKeyAlreadyUsed, key)
	}

	return existing, nil
}
