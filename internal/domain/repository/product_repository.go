package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductFilter criterios opcionales para listar productos.
type ProductFilter struct {
	NameContains string
	PriceGte     *decimal.Decimal
	PriceLte     *decimal.Decimal
	StockGte     *int
	StockLte     *int
	OrderBy      string
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error)
	// ListByOrderID devuelve los productos asociados a una orden.
	ListByOrderID(ctx context.Context, orderID string) ([]*entity.Product, error)
}
