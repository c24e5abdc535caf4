package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción, con el
// repositorio de órdenes ligado a esa transacción. Si fn retorna error el
// caller descarta la orden y sus asociaciones completas (rollback).
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
