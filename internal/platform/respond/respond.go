package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"dog-breeds/internal/errs"

	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON escribe v con el status dado. Los errores de encoding se loguean
// con el logger del request (zerolog.Ctx), que lleva request_id.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ya se escribió el status; solo queda loguear
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode response")
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error traduce errores de dominio a la respuesta HTTP.
// Los 5xx se loguean con el logger del request; el detalle no sale al cliente.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.Status(err)

	switch status {
	case http.StatusBadRequest:
		fe, _ := errs.Fields(err)
		JSON(w, r, status, ErrorResponse{Error: errs.ErrValidation.Error(), Fields: fe})
	case http.StatusNotFound:
		JSON(w, r, status, ErrorResponse{Error: errs.ErrNotFound.Error()})
	default:
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		JSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// DecodeJSON decodifica el body. Los errores de tipo se devuelven por campo
// (errs.FieldErrors) para que el cliente sepa qué corregir.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return errs.Field(typeErr.Field, typeMessage(typeErr.Type))
	case errors.Is(err, io.EOF):
		return errs.Field("body", "request body is empty")
	default:
		return errs.Field("body", "invalid json")
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return errs.MsgInteger
	case reflect.String:
		return "not a valid string"
	default:
		return "invalid value"
	}
}
