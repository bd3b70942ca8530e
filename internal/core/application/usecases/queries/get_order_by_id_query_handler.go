package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler loads the full detail of one order from the
// database: the order row plus its line items, mapped into the read
// projection without going through the domain aggregate.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query and returns the order detail.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	detail, err := h.loadOrderRow(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	items, err := h.loadLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	detail.Items = items

	return detail, nil
}

//nolint:funlen // a straight column-by-column scan of the order row
func (h GetOrderByIDQueryHandler) loadOrderRow(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name, last_name, email, phone,
			street, city, state, zip_code, country,
			shipping_method, payment_method,
			subtotal, shipping, tax, total,
			status, courier_id,
			created_at, updated_at, version
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var id uuid.UUID
	var customer CustomerResponse
	var shippingMethod, paymentMethod, subtotal, shipping, tax, total, status string
	var courierID uuid.NullUUID
	var createdAt, updatedAt time.Time
	var version int

	err := row.Scan(
		&id,
		&customer.FirstName, &customer.LastName, &customer.Email, &customer.Phone,
		&customer.Street, &customer.City, &customer.State, &customer.ZipCode, &customer.Country,
		&shippingMethod, &paymentMethod,
		&subtotal, &shipping, &tax, &total,
		&status, &courierID,
		&createdAt, &updatedAt, &version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	method, err := order.ShippingMethodFromString(shippingMethod)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		mapped, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return GetOrderByIDQueryResponse{}, courierErr
		}
		courier = &mapped
	}

	amounts := make([]kernel.Money, 0, 4)
	for _, raw := range []string{subtotal, shipping, tax, total} {
		amount, moneyErr := kernel.MoneyFromString(raw)
		if moneyErr != nil {
			return GetOrderByIDQueryResponse{}, moneyErr
		}
		amounts = append(amounts, amount)
	}

	return GetOrderByIDQueryResponse{
		ID:             responseID,
		Customer:       customer,
		ShippingMethod: method,
		PaymentMethod:  paymentMethod,
		Subtotal:       amounts[0],
		Shipping:       amounts[1],
		Tax:            amounts[2],
		Total:          amounts[3],
		Status:         orderStatus,
		CourierID:      courier,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		Version:        version,
	}, nil
}

func (h GetOrderByIDQueryHandler) loadLineItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]LineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity,
			color,
			size,
			image_ref
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)
	for rows.Next() {
		var productID uuid.UUID
		var productName, unitPrice, color, size, imageRef string
		var quantity int

		if err = rows.Scan(&productID, &productName, &unitPrice, &quantity, &color, &size, &imageRef); err != nil {
			return nil, err
		}

		item, mapErr := mapLineItem(productID, productName, unitPrice, quantity, color, size, imageRef)
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// mapLineItem converts raw row values into the line item projection.
func mapLineItem(
	productID uuid.UUID,
	productName, unitPrice string,
	quantity int,
	color, size, imageRef string,
) (LineItemResponse, error) {
	id, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return LineItemResponse{}, err
	}

	price, err := kernel.MoneyFromString(unitPrice)
	if err != nil {
		return LineItemResponse{}, err
	}

	return LineItemResponse{
		ProductID:   id,
		ProductName: productName,
		UnitPrice:   price,
		Quantity:    quantity,
		Color:       color,
		Size:        size,
		ImageRef:    imageRef,
		LineTotal:   price.MulInt(quantity),
	}, nil
}
