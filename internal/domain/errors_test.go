package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la taxonomía cerrada de errores. La regla central: todo error que
// no pertenece a la taxonomía se trata como interno, para que la capa de
// transporte nunca filtre detalles de infraestructura por un caso olvidado.
// ──────────────────────────────────────────────────────────────────────────────

func TestKindOf_ErroresClasificados(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{"validacion", domain.NewValidation("Invalid email format"), domain.KindValidation},
		{"conflicto", domain.NewConflict("Email already exists"), domain.KindConflict},
		{"no encontrado", domain.NewNotFound("Invalid customer ID"), domain.KindNotFound},
		{"interno", domain.NewInternal(errors.New("boom"), "storage failure"), domain.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.KindOf(tc.err))
		})
	}
}

func TestKindOf_ErrorSinClasificar(t *testing.T) {
	err := errors.New("pq: connection refused")
	assert.Equal(t, domain.KindInternal, domain.KindOf(err),
		"un error ajeno a la taxonomía debe tratarse como interno")
	assert.True(t, domain.IsInternal(err))
	assert.False(t, domain.IsValidation(err))
	assert.False(t, domain.IsConflict(err))
	assert.False(t, domain.IsNotFound(err))
}

func TestKindOf_ErrorEnvuelto(t *testing.T) {
	base := domain.NewConflict("Email already exists")
	wrapped := fmt.Errorf("create customer: %w", base)

	assert.Equal(t, domain.KindConflict, domain.KindOf(wrapped),
		"la clasificación debe sobrevivir a fmt.Errorf con %%w")
	assert.True(t, domain.IsConflict(wrapped))
}

func TestError_MensajeYCausa(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := domain.NewInternal(cause, "storage failure")

	assert.Equal(t, "storage failure", err.Error(),
		"el mensaje visible no debe incluir la causa")
	assert.True(t, errors.Is(err, cause), "la causa debe conservarse para errors.Is")
}

func TestError_MensajesConFormato(t *testing.T) {
	err := domain.NewNotFoundf("Invalid product ID: %s", "prod-42")
	require.Error(t, err)
	assert.Equal(t, "Invalid product ID: prod-42", err.Error())
	assert.True(t, domain.IsNotFound(err))

	verr := domain.NewValidationf("Invalid orderBy field: %s", "secret")
	assert.Equal(t, "Invalid orderBy field: secret", verr.Error())
	assert.True(t, domain.IsValidation(verr))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", domain.KindValidation.String())
	assert.Equal(t, "conflict", domain.KindConflict.String())
	assert.Equal(t, "not_found", domain.KindNotFound.String())
	assert.Equal(t, "internal", domain.KindInternal.String())
}

func TestIs_ErrorNil(t *testing.T) {
	assert.False(t, domain.IsValidation(nil))
	assert.False(t, domain.IsInternal(nil), "nil no es un error, de ninguna clase")
}
