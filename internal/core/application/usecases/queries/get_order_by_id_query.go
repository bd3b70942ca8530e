package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves the full detail of one order: the customer
// snapshot, every line item, the monetary breakdown, and the concurrency
// version the client needs for subsequent writes.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
// Validates that the order ID is valid.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to load.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerResponse is the read projection of the checkout customer snapshot.
type CustomerResponse struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// LineItemResponse is the read projection of one purchased position.
type LineItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Color       string
	Size        string
	ImageRef    string
	LineTotal   kernel.Money
}

// GetOrderByIDQueryResponse is the full read projection of an order.
type GetOrderByIDQueryResponse struct {
	ID             kernel.UUID
	Customer       CustomerResponse
	Items          []LineItemResponse
	ShippingMethod order.ShippingMethod
	PaymentMethod  string
	Subtotal       kernel.Money
	Shipping       kernel.Money
	Tax            kernel.Money
	Total          kernel.Money
	Status         order.Status
	CourierID      *kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}
