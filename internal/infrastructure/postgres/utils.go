package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/crm-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// orderClause traduce un campo de orden estilo API (prefijo "-" = descendente)
// a una cláusula ORDER BY segura usando una lista blanca de columnas.
// Un campo fuera de la lista es un error de validación, nunca se interpola
// texto del cliente en el SQL.
func orderClause(orderBy string, columns map[string]string, fallback string) (string, error) {
	if orderBy == "" {
		return fallback, nil
	}
	field := orderBy
	dir := "ASC"
	if strings.HasPrefix(field, "-") {
		field = field[1:]
		dir = "DESC"
	}
	col, ok := columns[field]
	if !ok {
		return "", domain.NewValidationf("Invalid orderBy field: %s", field)
	}
	if col == "id" {
		return col + " " + dir, nil
	}
	// Desempate por id para un orden estable entre llamadas.
	return col + " " + dir + ", id ASC", nil
}
