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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productOrderColumns columnas permitidas en OrderBy.
var productOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Stock, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos según el filtro, por defecto en orden de inserción.
func (r *ProductRepo) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at
		FROM products`
	var conds []string
	var args []any
	orderBy := ""
	if filter != nil {
		if filter.NameContains != "" {
			args = append(args, filter.NameContains)
			conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
		}
		if filter.PriceGte != nil {
			args = append(args, *filter.PriceGte)
			conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
		}
		if filter.PriceLte != nil {
			args = append(args, *filter.PriceLte)
			conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
		}
		if filter.StockGte != nil {
			args = append(args, *filter.StockGte)
			conds = append(conds, fmt.Sprintf("stock >= $%d", len(args)))
		}
		if filter.StockLte != nil {
			args = append(args, *filter.StockLte)
			conds = append(conds, fmt.Sprintf("stock <= $%d", len(args)))
		}
		orderBy = filter.OrderBy
	}
	clause, err := orderClause(orderBy, productOrderColumns, "created_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + clause

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByOrderID devuelve los productos asociados a una orden, en orden de
// inserción del catálogo.
func (r *ProductRepo) ListByOrderID(ctx context.Context, orderID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, p.created_at
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.created_at ASC, p.id ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list products by order: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
