package graphql

import (
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/jhoicas/crm-api/internal/domain"
)

// Códigos expuestos en extensions.code. Taxonomía cerrada: todo error que
// devuelve la API es exactamente uno de estos.
const (
	codeValidation = "VALIDATION"
	codeConflict   = "CONFLICT"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL"
)

var _ gqlerrors.ExtendedError = (*apiError)(nil)

// apiError error visible del protocolo. Implementa gqlerrors.ExtendedError
// para que el código viaje en extensions.code de la respuesta; debe
// devolverse tal cual desde el resolve, sin envolver.
type apiError struct {
	message string
	code    string
}

func (e *apiError) Error() string { return e.message }

// Extensions implementa gqlerrors.ExtendedError.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toAPIError traduce un error de dominio a su representación de protocolo.
// Los errores internos no exponen la causa al cliente.
func toAPIError(err error) *apiError {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return &apiError{message: err.Error(), code: codeValidation}
	case domain.KindConflict:
		return &apiError{message: err.Error(), code: codeConflict}
	case domain.KindNotFound:
		return &apiError{message: err.Error(), code: codeNotFound}
	default:
		return &apiError{message: "Internal server error", code: codeInternal}
	}
}
