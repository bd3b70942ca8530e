// Package checkoutrepo persists checkout idempotency keys.
// A key row is written in the same transaction as the order it produced.
package checkoutrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres unique_violation, raised when two transactions insert the same key.
const uniqueViolationCode = "23505"

// CheckoutKeyDTO represents one used idempotency key and the order it created.
type CheckoutKeyDTO struct {
	Key       string    `gorm:"type:text;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for idempotency keys.
func (CheckoutKeyDTO) TableName() string {
	return "checkout_keys"
}

// GormCheckoutKeyRepository implements CheckoutKeyRepository using GORM.
type GormCheckoutKeyRepository struct {
	db *gorm.DB
}

// NewGormCheckoutKeyRepository creates a new GORM checkout key repository.
func NewGormCheckoutKeyRepository(db *gorm.DB) *GormCheckoutKeyRepository {
	return &GormCheckoutKeyRepository{db: db}
}

// Add records the binding key -> orderID. A concurrent duplicate insert hits
// the primary key constraint and is reported as ErrCheckoutKeyAlreadyUsed so
// the caller can replay the winner's order.
func (r *GormCheckoutKeyRepository) Add(ctx context.Context, key string, orderID kernel.UUID) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := CheckoutKeyDTO{Key: key, OrderID: orderID.Bytes()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", ports.ErrCheckoutKeyAlreadyUsed, key)
		}
		return err
	}
	return nil
}

// GetOrderID resolves a previously recorded key to its order id.
func (r *GormCheckoutKeyRepository) GetOrderID(ctx context.Context, key string) (kernel.UUID, error) {
	if key == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("key")
	}

	var dto CheckoutKeyDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("checkoutKey", key)
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.OrderID[:])
}
