package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// OrderFilter criterios opcionales para listar órdenes. CustomerName,
// ProductName y ProductID filtran a través de las relaciones.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   string
	ProductName    string
	ProductID      string
	OrderBy        string
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// AddProduct asocia un producto a la orden. Una asociación repetida
	// no es un error: se conserva una sola fila por par (orden, producto).
	AddProduct(ctx context.Context, orderID, productID string) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter *OrderFilter) ([]*entity.Order, error)
}
