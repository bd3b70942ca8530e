package services

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// Default pricing policy. Shipping fees are flat per method; tax is a flat
// percentage of the subtotal. These are configuration values, not computed
// from weight or distance.
const (
	defaultStandardShippingFee = 5.00
	defaultExpressShippingFee  = 15.00
	defaultTaxRatePercent      = 10.0
)

// PricingCalculator is a pure domain service computing the monetary breakdown
// of a checkout: subtotal, flat shipping fee, tax, and total. It has no side
// effects and no I/O; two calls with the same inputs produce the same Totals.
type PricingCalculator struct {
	standardFee kernel.Money
	expressFee  kernel.Money
	taxPercent  float64
}

// NewPricingCalculator creates a calculator with the default fee schedule:
// standard 5.00, express 15.00, tax 10%.
func NewPricingCalculator() PricingCalculator {
	return NewPricingCalculatorWithRates(
		kernel.NewMoneyFromFloat(defaultStandardShippingFee),
		kernel.NewMoneyFromFloat(defaultExpressShippingFee),
		defaultTaxRatePercent,
	)
}

// NewPricingCalculatorWithRates creates a calculator with an explicit fee
// schedule. Used when fees come from configuration.
func NewPricingCalculatorWithRates(standardFee, expressFee kernel.Money, taxPercent float64) PricingCalculator {
	return PricingCalculator{
		standardFee: standardFee,
		expressFee:  expressFee,
		taxPercent:  taxPercent,
	}
}

// Calculate computes the totals for the given priced line items and shipping
// method:
//
//	subtotal = sum of unitPrice x quantity per line
//	shipping = flat fee keyed by shipping method
//	tax      = subtotal x tax rate
//	total    = subtotal + shipping + tax
//
// All amounts are non-negative by construction of kernel.Money; a line whose
// price failed to resolve contributes zero rather than poisoning the total.
func (c PricingCalculator) Calculate(items []order.PricedLineItem, method order.ShippingMethod) (order.Totals, error) {
	if err := method.Validate(); err != nil {
		return order.Totals{}, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := c.standardFee
	if method == order.Express {
		shipping = c.expressFee
	}

	return order.NewTotals(subtotal, shipping, subtotal.Percent(c.taxPercent))
}
