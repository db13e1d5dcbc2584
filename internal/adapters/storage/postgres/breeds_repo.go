package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/errs"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

const selectBreedsWithCount = `
	SELECT
		b.id, b.name, b.size,
		b.friendliness, b.trainability, b.shedding_amount, b.exercise_needs,
		COUNT(d.id) AS dog_count
	FROM breeds b
	LEFT JOIN dogs d ON d.breed_id = b.id
`

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, selectBreedsWithCount+`
		GROUP BY b.id
		ORDER BY b.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, selectBreedsWithCount+`
		WHERE b.id = $1
		GROUP BY b.id
	`, id)

	b, err := scanBreed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeds.Breed{}, errs.ErrNotFound
		}
		return breeds.Breed{}, err
	}
	return b, nil
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO breeds (
			name, size,
			friendliness, trainability, shedding_amount, exercise_needs
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		b.Name,
		string(b.Size),
		b.Friendliness,
		b.Trainability,
		b.SheddingAmount,
		b.ExerciseNeeds,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, 0)
	}
	return id, nil
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeds
		SET
			name = $2,
			size = $3,
			friendliness = $4,
			trainability = $5,
			shedding_amount = $6,
			exercise_needs = $7
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		string(b.Size),
		b.Friendliness,
		b.Trainability,
		b.SheddingAmount,
		b.ExerciseNeeds,
	)
	if err != nil {
		return mapPgError(err, 0)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete: los perros se van por ON DELETE CASCADE en la misma sentencia.
func (r *BreedsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBreed(row rowScanner) (breeds.Breed, error) {
	var b breeds.Breed
	var size string
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&size,
		&b.Friendliness,
		&b.Trainability,
		&b.SheddingAmount,
		&b.ExerciseNeeds,
		&b.DogCount,
	); err != nil {
		return breeds.Breed{}, err
	}
	b.Size = breeds.Size(size)
	return b, nil
}
