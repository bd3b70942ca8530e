package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of the product catalog.
// The catalog is maintained by an external system; this module reads it and
// decrements stock during checkout.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"type:text"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount float64         `gorm:"type:numeric(5,2)"`
	ImageRef string          `gorm:"type:text"`
	Stock    int
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product read model.
func toDomain(dto ProductDTO) (product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Product{}, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(id, dto.Name, price, dto.Discount, dto.ImageRef, dto.Stock)
}

// FromDomain converts a product read model to its database representation.
// Used by seeding and tests.
func FromDomain(resolved product.Product) ProductDTO {
	return ProductDTO{
		ID:       resolved.ID().Bytes(),
		Name:     resolved.Name(),
		Price:    resolved.Price().Decimal(),
		Discount: resolved.Discount(),
		ImageRef: resolved.ImageRef(),
		Stock:    resolved.Stock(),
	}
}
