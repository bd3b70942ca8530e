package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// ShippingMethod selects the flat-fee delivery option chosen at checkout.
type ShippingMethod int

const (
	// UnknownShippingMethod represents an invalid or undefined method.
	UnknownShippingMethod ShippingMethod = iota

	// Standard is the default ground delivery option.
	Standard

	// Express is the expedited delivery option.
	Express
)

// getShippingMethodStrings returns a map of methods to their wire representations.
func getShippingMethodStrings() map[ShippingMethod]string {
	return map[ShippingMethod]string{
		UnknownShippingMethod: "unknown",
		Standard:              "standard",
		Express:               "express",
	}
}

// getValidShippingMethodStrings returns a map of only valid methods.
func getValidShippingMethodStrings() map[ShippingMethod]string {
	//nolint:exhaustive // UnknownShippingMethod is intentionally excluded
	return map[ShippingMethod]string{
		Standard: "standard",
		Express:  "express",
	}
}

// ShippingMethodFromString parses the wire representation ("standard" | "express").
func ShippingMethodFromString(s string) (ShippingMethod, error) {
	for method, str := range getValidShippingMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownShippingMethod, errs.NewValueIsInvalidErrorWithCause(
		"shippingMethod is invalid",
		fmt.Errorf("%q is not a valid shipping method", s),
	)
}

// Validate checks if the ShippingMethod value is valid.
func (m ShippingMethod) Validate() error {
	if _, ok := getValidShippingMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingMethod is invalid",
			fmt.Errorf("%d is not a valid shipping method", m),
		)
	}
	return nil
}

// String returns the wire representation of the method.
func (m ShippingMethod) String() string {
	if str, ok := getShippingMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
