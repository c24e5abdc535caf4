package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// customerOrderColumns columnas permitidas en OrderBy. Acepta el nombre de
// campo de la API (camelCase) y el de la columna (snake_case).
var customerOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Una violación del constraint único de
// email se traduce a ConflictError.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, nullIfEmpty(customer.Phone), customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("Email already exists")
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), created_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email; (nil, nil) si no existe.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), created_at
		FROM customers WHERE email = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return &c, nil
}

// List lista clientes según el filtro, por defecto en orden de inserción.
func (r *CustomerRepo) List(ctx context.Context, filter *repository.CustomerFilter) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), created_at
		FROM customers`
	var conds []string
	var args []any
	orderBy := ""
	if filter != nil {
		if filter.NameContains != "" {
			args = append(args, filter.NameContains)
			conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
		}
		if filter.EmailContains != "" {
			args = append(args, filter.EmailContains)
			conds = append(conds, fmt.Sprintf("email ILIKE '%%' || $%d || '%%'", len(args)))
		}
		if filter.PhoneStartsWith != "" {
			args = append(args, filter.PhoneStartsWith)
			conds = append(conds, fmt.Sprintf("phone LIKE $%d || '%%'", len(args)))
		}
		if filter.CreatedAtGte != nil {
			args = append(args, *filter.CreatedAtGte)
			conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
		}
		if filter.CreatedAtLte != nil {
			args = append(args, *filter.CreatedAtLte)
			conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
		}
		orderBy = filter.OrderBy
	}
	clause, err := orderClause(orderBy, customerOrderColumns, "created_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + clause

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
