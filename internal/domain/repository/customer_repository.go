package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerFilter criterios opcionales para listar clientes.
// Campos en cero se ignoran. OrderBy acepta un nombre de campo de la
// entidad, con prefijo "-" para orden descendente.
type CustomerFilter struct {
	NameContains    string
	EmailContains   string
	PhoneStartsWith string
	CreatedAtGte    *time.Time
	CreatedAtLte    *time.Time
	OrderBy         string
}

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByEmail devuelven (nil, nil) cuando no existe el registro.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// List devuelve los clientes que cumplen el filtro; nil lista todo en
	// orden de inserción.
	List(ctx context.Context, filter *CustomerFilter) ([]*entity.Customer, error)
}
