package entity

import "time"

// Customer representa un cliente del CRM.
// Email es único en todo el conjunto de clientes (constraint en la base).
// Phone es opcional; vacío significa no informado.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
