// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductCatalogFactory provides access to the product catalog within a transaction.
	ProductCatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// CheckoutKeyRepoFactory provides access to the idempotency key repository
	// within a transaction.
	CheckoutKeyRepoFactory interface {
		CheckoutKeyRepository() ports.CheckoutKeyRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Carries the product catalog alongside the order repository so a
	// cancellation can release reserved stock in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductCatalogFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages the checkout transaction: creating the order,
	// reserving catalog stock, and recording the idempotency key must all
	// commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   catalog := uow.ProductCatalog()
	//   keys := uow.CheckoutKeyRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductCatalogFactory
		CheckoutKeyRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
