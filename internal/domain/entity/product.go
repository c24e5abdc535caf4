package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es decimal exacto (NUMERIC en la base, nunca float); Stock es la
// cantidad disponible y nunca es negativo.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
}
