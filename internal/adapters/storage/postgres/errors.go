package postgres

import (
	"errors"
	"strings"

	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// mapPgError traduce violaciones de FK/CHECK al mismo error de validación
// que produce el service. El resto pasa tal cual.
func mapPgError(err error, breedID int64) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		return errs.Field("breed", dogs.InvalidBreedMessage(breedID))
	case codeCheckViolation:
		return errs.Field(checkField(pgErr.TableName, pgErr.ConstraintName), "value violates constraint")
	case codeNumericOutOfRange:
		// postgres no informa la columna
		return errs.Field("non_field_errors", "value out of range")
	default:
		return err
	}
}

// breeds_friendliness_check -> friendliness
func checkField(table, constraint string) string {
	field := strings.TrimSuffix(constraint, "_check")
	field = strings.TrimPrefix(field, table+"_")
	if field == "breed_id" {
		return "breed"
	}
	if field == "" {
		return "non_field_errors"
	}
	return field
}
