// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer email.
//
// Timestamps are owned by the domain aggregate, so GORM's automatic time
// tracking is disabled on them.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Customer       CustomerDTO     `gorm:"embedded"`
	Items          []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingMethod string          `gorm:"type:text"`
	PaymentMethod  string          `gorm:"type:text"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Shipping       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status         string          `gorm:"type:text;index"`
	CourierID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime:false;index"`
	Version        int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer snapshot within the order table.
// Stores the contact and shipping address captured at checkout.
type CustomerDTO struct {
	FirstName string `gorm:"type:text"`
	LastName  string `gorm:"type:text"`
	Email     string `gorm:"type:text;index"`
	Phone     string `gorm:"type:text"`
	Street    string `gorm:"type:text"`
	City      string `gorm:"type:text"`
	State     string `gorm:"type:text"`
	ZipCode   string `gorm:"type:text"`
	Country   string `gorm:"type:text"`
}

// LineItemDTO represents one purchased position in the order_items child table.
// The serial primary key preserves the insertion order of the cart lines.
type LineItemDTO struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid"`
	ProductName string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity    int
	Color       string          `gorm:"type:text"`
	Size        string          `gorm:"type:text"`
	ImageRef    string          `gorm:"type:text"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional courier assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	customer := aggregate.Customer()
	address := customer.Address()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
			Color:       item.Color(),
			Size:        item.Size(),
			ImageRef:    item.ImageRef(),
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			FirstName: customer.FirstName(),
			LastName:  customer.LastName(),
			Email:     customer.Email(),
			Phone:     customer.Phone(),
			Street:    address.Street(),
			City:      address.City(),
			State:     address.State(),
			ZipCode:   address.ZipCode(),
			Country:   address.Country(),
		},
		Items:          items,
		ShippingMethod: aggregate.ShippingMethod().String(),
		PaymentMethod:  aggregate.PaymentMethod(),
		Subtotal:       totals.Subtotal().Decimal(),
		Shipping:       totals.Shipping().Decimal(),
		Tax:            totals.Tax().Decimal(),
		Total:          totals.Total().Decimal(),
		Status:         aggregate.Status().String(),
		CourierID:      courierID,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which re-validates
// every invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	address, err := order.NewAddress(
		dto.Customer.Street, dto.Customer.City, dto.Customer.State, dto.Customer.ZipCode, dto.Customer.Country,
	)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerSnapshot(
		dto.Customer.FirstName, dto.Customer.LastName, dto.Customer.Email, dto.Customer.Phone, address,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.PricedLineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shippingMethod, err := order.ShippingMethodFromString(dto.ShippingMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totals, err := restoreTotals(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customer, items, shippingMethod, dto.PaymentMethod, totals,
		status, courierID, dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.PricedLineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.PricedLineItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return order.PricedLineItem{}, err
	}

	return order.NewPricedLineItem(
		productID, dto.ProductName, unitPrice, dto.Quantity, dto.Color, dto.Size, dto.ImageRef,
	)
}

func restoreTotals(dto OrderDTO) (order.Totals, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, raw := range []decimal.Decimal{dto.Subtotal, dto.Shipping, dto.Tax, dto.Total} {
		amount, err := kernel.NewMoneyFromDecimal(raw)
		if err != nil {
			return order.Totals{}, err
		}
		amounts = append(amounts, amount)
	}

	return order.RestoreTotals(amounts[0], amounts[1], amounts[2], amounts[3])
}
