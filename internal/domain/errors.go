package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores del dominio en una taxonomía cerrada.
// Toda falla de un caso de uso pertenece a exactamente una de estas clases;
// la capa de transporte las traduce a la representación del protocolo.
type Kind int

const (
	// KindValidation entrada con forma, rango o formato inválido.
	KindValidation Kind = iota
	// KindConflict violación de unicidad contra el estado persistido.
	KindConflict
	// KindNotFound una referencia no resuelve a un registro existente.
	KindNotFound
	// KindInternal falla de almacenamiento o infraestructura.
	KindInternal
)

// String devuelve el nombre de la clase.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error es un error de dominio clasificado con mensaje legible.
// Message es parte del contrato visible de la API; Err conserva la causa
// subyacente (opcional) para logs y errors.Is/As.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap devuelve la causa subyacente.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation construye un ValidationError con el mensaje dado.
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewValidationf construye un ValidationError con formato.
func NewValidationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflict construye un ConflictError con el mensaje dado.
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewNotFound construye un NotFoundError con el mensaje dado.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewNotFoundf construye un NotFoundError con formato.
func NewNotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInternal envuelve una falla de infraestructura conservando la causa.
func NewInternal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf devuelve la clase del error. Errores sin clasificar son internos.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsValidation indica si err es un error de validación.
func IsValidation(err error) bool { return is(err, KindValidation) }

// IsConflict indica si err es una violación de unicidad.
func IsConflict(err error) bool { return is(err, KindConflict) }

// IsNotFound indica si err es una referencia inexistente.
func IsNotFound(err error) bool { return is(err, KindNotFound) }

// IsInternal indica si err es una falla de infraestructura.
func IsInternal(err error) bool { return is(err, KindInternal) }

func is(err error, k Kind) bool {
	if err == nil {
		return false
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == k
	}
	return k == KindInternal
}
