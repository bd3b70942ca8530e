package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists order summaries from the database.
// Reads the orders table directly and resolves the line items of every
// listed order in one follow-up query.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			status,
			total,
			created_at,
			version
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var email, status, total string
		var createdAt time.Time
		var version int

		if err = rows.Scan(&id, &email, &status, &total, &createdAt, &version); err != nil {
			return nil, err
		}

		summary, mapErr := mapOrderSummary(id, email, status, total, createdAt, version)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachLineItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLineItems loads the line items of every listed order in one query and
// attaches them to the matching summaries, preserving insertion order.
func attachLineItems(ctx context.Context, db *gorm.DB, summaries []OrderSummaryResponse) error {
	if len(summaries) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(summaries))
	orderIDs := make([]string, 0, len(summaries))
	for i := range summaries {
		summaries[i].Items = make([]LineItemResponse, 0)
		index[summaries[i].ID] = i
		orderIDs = append(orderIDs, summaries[i].ID.String())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			unit_price,
			quantity,
			color,
			size,
			image_ref
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID uuid.UUID
		var productName, unitPrice, color, size, imageRef string
		var quantity int

		if err = rows.Scan(&orderID, &productID, &productName, &unitPrice, &quantity, &color, &size, &imageRef); err != nil {
			return err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		item, mapErr := mapLineItem(productID, productName, unitPrice, quantity, color, size, imageRef)
		if mapErr != nil {
			return mapErr
		}

		if i, ok := index[id]; ok {
			summaries[i].Items = append(summaries[i].Items, item)
		}
	}

	return rows.Err()
}

// mapOrderSummary converts raw row values into the response projection.
func mapOrderSummary(
	id uuid.UUID,
	email, status, total string,
	createdAt time.Time,
	version int,
) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	orderTotal, err := kernel.MoneyFromString(total)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:            orderID,
		CustomerEmail: email,
		Status:        orderStatus,
		Total:         orderTotal,
		CreatedAt:     createdAt,
		Version:       version,
	}, nil
}
