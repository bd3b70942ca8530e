// Package order provides domain entities and business logic for order management
// in the storefront system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the customer snapshot, line items,
//     totals, fulfillment status, and courier binding
//   - Status: A state machine that enforces valid fulfillment transitions
//   - CustomerSnapshot, PricedLineItem, Totals, ShippingMethod: value objects
//     captured immutably at checkout
//
// Key business rules:
//   - Orders are created exactly once at checkout, never partially
//   - Line items and the customer snapshot never change after creation
//   - Status follows the graph pending -> processing -> shipped -> delivered,
//     with cancellation possible from any non-terminal state
//   - Courier assignment is a one-time binding and never changes status
//   - Every mutation bumps the version used for optimistic concurrency
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
