// Package productrepo implements the product catalog port over the products
// table. The order core never creates or edits products; it resolves them for
// pricing, decrements stock during checkout, and returns stock on
// cancellation.
package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Get resolves a product by its catalog identifier.
func (r *GormProductCatalog) Get(ctx context.Context, id kernel.UUID) (product.Product, error) {
	if err := id.Validate(); err != nil {
		return product.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return product.Product{}, err
	}

	return toDomain(dto)
}

// ReserveStock atomically decrements the product's stock by quantity.
// The guarded UPDATE only applies when enough stock remains, so two
// concurrent checkouts can never oversell the last units.
func (r *GormProductCatalog) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedReservation(ctx, id)
	}

	return nil
}

// ReleaseStock atomically returns quantity units to the product's stock.
// The compensating write for ReserveStock, run inside the cancellation
// transaction.
func (r *GormProductCatalog) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// classifyMissedReservation distinguishes an out-of-stock product from a
// missing one.
func (r *GormProductCatalog) classifyMissedReservation(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return product.ErrInsufficientStock
}
