package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Los CHECK usan el nombre por defecto de Postgres (<tabla>_<columna>_check);
// mapPgError depende de ese formato.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS breeds (
		id              BIGSERIAL PRIMARY KEY,
		name            VARCHAR(127) NOT NULL,
		size            CHAR(1) NOT NULL DEFAULT 'm' CHECK (size IN ('t', 's', 'm', 'l')),
		friendliness    INTEGER NOT NULL CHECK (friendliness BETWEEN 1 AND 5),
		trainability    INTEGER NOT NULL CHECK (trainability BETWEEN 1 AND 5),
		shedding_amount INTEGER NOT NULL CHECK (shedding_amount BETWEEN 1 AND 5),
		exercise_needs  INTEGER NOT NULL CHECK (exercise_needs BETWEEN 1 AND 5)
	)`,
	`CREATE TABLE IF NOT EXISTS dogs (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(127) NOT NULL,
		age           INTEGER NOT NULL CHECK (age >= 0),
		breed_id      BIGINT NOT NULL REFERENCES breeds (id) ON DELETE CASCADE,
		gender        CHAR(1) NOT NULL CHECK (gender IN ('m', 'f')),
		color         VARCHAR(127) NOT NULL,
		favorite_food VARCHAR(127) NOT NULL,
		favorite_toy  VARCHAR(127) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS dogs_breed_id_idx ON dogs (breed_id)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return tx.Commit()
}
