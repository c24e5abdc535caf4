package dto

import "time"

// CreateCustomerInput entrada para crear un cliente. Phone es opcional.
type CreateCustomerInput struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// CustomerResponse salida de un cliente. Phone es nil si no fue informado.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// BulkCreateCustomersResult resultado de una carga masiva: los clientes
// creados más un error legible por cada fila rechazada. Las filas son
// independientes entre sí; una fila inválida no afecta a las demás.
type BulkCreateCustomersResult struct {
	Customers []*CustomerResponse `json:"customers"`
	Errors    []string            `json:"errors"`
}
