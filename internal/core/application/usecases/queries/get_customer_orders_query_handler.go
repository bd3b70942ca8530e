package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists order summaries for one customer email.
// Shares the summary projection with the full listing; an unknown email is
// not an error and yields an empty result.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer-scoped listing.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
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
		WHERE LOWER(email) = LOWER(?)
		ORDER BY created_at DESC, id
	`, query.Email()).Rows()
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
