package errs

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Mensajes comunes de validación (mismo texto en todos los módulos).
const (
	MsgRequired = "this field is required"
	MsgBlank    = "this field may not be blank"
	MsgInteger  = "a valid integer is required"
)

// FieldErrors agrupa errores de validación por campo (campo -> mensaje).
// Matchea ErrValidation con errors.Is.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = msg
}

// Err devuelve nil si no hay errores acumulados.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Field construye un FieldErrors de un solo campo.
func Field(field, msg string) FieldErrors {
	return FieldErrors{field: msg}
}

// Fields extrae los errores por campo, si err los lleva.
func Fields(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Status mapea un error de dominio a un código HTTP.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
