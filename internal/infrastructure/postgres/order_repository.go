package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderOrderColumns columnas permitidas en OrderBy.
var orderOrderColumns = map[string]string{
	"id":           "id",
	"totalAmount":  "total_amount",
	"total_amount": "total_amount",
	"orderDate":    "order_date",
	"order_date":   "order_date",
	"createdAt":    "created_at",
	"created_at":   "created_at",
}

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de una orden.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, total_amount, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.TotalAmount, order.OrderDate, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// AddProduct asocia un producto a la orden. ON CONFLICT DO NOTHING: un par
// repetido no es un error y se guarda una sola vez.
func (r *OrderRepo) AddProduct(ctx context.Context, orderID, productID string) error {
	query := `
		INSERT INTO order_products (order_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	_, err := r.q.Exec(ctx, query, orderID, productID)
	if err != nil {
		return fmt.Errorf("insert order product: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, total_amount, order_date, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista órdenes según el filtro, por defecto en orden de inserción.
// Los filtros por cliente o producto usan EXISTS sobre las relaciones para
// no duplicar órdenes en el resultado.
func (r *OrderRepo) List(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date, o.created_at
		FROM orders o`
	var conds []string
	var args []any
	orderBy := ""
	if filter != nil {
		if filter.TotalAmountGte != nil {
			args = append(args, *filter.TotalAmountGte)
			conds = append(conds, fmt.Sprintf("o.total_amount >= $%d", len(args)))
		}
		if filter.TotalAmountLte != nil {
			args = append(args, *filter.TotalAmountLte)
			conds = append(conds, fmt.Sprintf("o.total_amount <= $%d", len(args)))
		}
		if filter.OrderDateGte != nil {
			args = append(args, *filter.OrderDateGte)
			conds = append(conds, fmt.Sprintf("o.order_date >= $%d", len(args)))
		}
		if filter.OrderDateLte != nil {
			args = append(args, *filter.OrderDateLte)
			conds = append(conds, fmt.Sprintf("o.order_date <= $%d", len(args)))
		}
		if filter.CustomerName != "" {
			args = append(args, filter.CustomerName)
			conds = append(conds, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM customers c WHERE c.id = o.customer_id AND c.name ILIKE '%%' || $%d || '%%')",
				len(args)))
		}
		if filter.ProductName != "" {
			args = append(args, filter.ProductName)
			conds = append(conds, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM order_products op JOIN products p ON p.id = op.product_id WHERE op.order_id = o.id AND p.name ILIKE '%%' || $%d || '%%')",
				len(args)))
		}
		if filter.ProductID != "" {
			args = append(args, filter.ProductID)
			conds = append(conds, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = o.id AND op.product_id = $%d)",
				len(args)))
		}
		orderBy = filter.OrderBy
	}
	clause, err := orderClause(orderBy, orderOrderColumns, "created_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + clause

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
