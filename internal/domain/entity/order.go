package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido de un cliente.
// TotalAmount es la suma decimal de los precios de los productos al momento
// de la creación; no se recalcula después. La asociación con productos
// (muchos a muchos) queda fija al crear el pedido.
type Order struct {
	ID          string
	CustomerID  string
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	CreatedAt   time.Time
}
