package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves summaries of every order placed with the
// given customer email. Orders carry no account binding; the email captured
// in the checkout snapshot is the customer scoping key.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery("ada@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid email: %w", err)
//	}
//
//	handler := NewGetCustomerOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query scoped to one customer email.
// The email must not be empty; matching is case-insensitive.
func NewGetCustomerOrdersQuery(email string) (GetCustomerOrdersQuery, error) {
	if strings.TrimSpace(email) == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetCustomerOrdersQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Email returns the customer email the query is scoped to.
func (q GetCustomerOrdersQuery) Email() string {
	return q.email
}
