package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderInput entrada para crear una orden. OrderDate nil usa la hora
// actual del servidor. Un ID de producto repetido suma su precio cada vez
// que aparece.
type CreateOrderInput struct {
	CustomerID string     `json:"customer_id" validate:"required"`
	ProductIDs []string   `json:"product_ids" validate:"required,min=1"`
	OrderDate  *time.Time `json:"order_date"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
	CreatedAt   time.Time       `json:"created_at"`
}
