package gormstore

import (
	"errors"
	"strings"

	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translate lleva los errores de la base al mismo error de validación
// que produce el service.
// La FK llega traducida por gorm (TranslateError: true); los CHECK no,
// el dialecto sqlite solo traduce duplicados y FK.
func translate(err error, breedID int64) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.Field("breed", dogs.InvalidBreedMessage(breedID))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck {
		return errs.Field(checkField(sqliteErr.Error()), "value violates constraint")
	}
	return err
}

// "CHECK constraint failed: chk_breeds_friendliness" -> friendliness
// gorm nombra los CHECK como chk_<tabla>_<columna>.
func checkField(msg string) string {
	_, name, ok := strings.Cut(msg, "CHECK constraint failed: ")
	if !ok {
		return "non_field_errors"
	}
	name = strings.TrimSpace(name)
	for _, table := range []string{"breeds", "dogs"} {
		if field, found := strings.CutPrefix(name, "chk_"+table+"_"); found && field != "" {
			if field == "breed_id" {
				return "breed"
			}
			return field
		}
	}
	return "non_field_errors"
}
