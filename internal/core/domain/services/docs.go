// Package services contains stateless domain services for the checkout flow.
//
// The package includes:
//   - CartAggregator: resolves client cart lines into priced line items
//     through the product catalog, snapshotting product data
//   - PricingCalculator: pure computation of subtotal, shipping, tax, and
//     total from priced line items and a shipping method
//
// Domain services coordinate value objects and external collaborators without
// holding any mutable state of their own; every call is independent.
package services
