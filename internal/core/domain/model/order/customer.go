package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// through the NewAddress constructor.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrCustomerSnapshotIsNotConstructed is returned when a CustomerSnapshot
	// was not created through the NewCustomerSnapshot constructor.
	ErrCustomerSnapshotIsNotConstructed = errors.New(
		"CustomerSnapshot must be created via NewCustomerSnapshot constructor",
	)
)

// Address is a value object holding the delivery address captured at checkout.
// Street, city, zip code, and country are required; state is optional.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
// Returns a ValueIsRequiredError naming the first missing required field.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if zipCode == "" {
		return Address{}, errs.NewValueIsRequiredError("zipCode")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// State returns the state or region of the address. May be empty.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string { return a.zipCode }

// Country returns the country of the address.
func (a Address) Country() string { return a.country }

// CustomerSnapshot is a value object holding the customer contact details
// captured at checkout. The snapshot is copied into the order and never
// re-resolved: the order stays readable even if the customer account is
// later altered or deleted.
type CustomerSnapshot struct {
	firstName string
	lastName  string
	email     string
	phone     string
	address   Address

	guard guard.ConstructorGuard
}

// NewCustomerSnapshot creates a validated customer snapshot.
// First name, last name, and email are required; phone is optional.
// The address must itself be a constructed Address.
func NewCustomerSnapshot(firstName, lastName, email, phone string, address Address) (CustomerSnapshot, error) {
	if firstName == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("lastName")
	}
	if email == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("email")
	}
	if err := address.Validate(); err != nil {
		return CustomerSnapshot{}, err
	}

	return CustomerSnapshot{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through NewCustomerSnapshot.
func (c CustomerSnapshot) Validate() error {
	return c.guard.Validate(ErrCustomerSnapshotIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c CustomerSnapshot) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c CustomerSnapshot) LastName() string { return c.lastName }

// Email returns the customer's email address. It is the stable identifier
// used to scope order listings to a customer.
func (c CustomerSnapshot) Email() string { return c.email }

// Phone returns the customer's phone number. May be empty.
func (c CustomerSnapshot) Phone() string { return c.phone }

// Address returns the delivery address.
func (c CustomerSnapshot) Address() Address { return c.address }
