package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

// List anota avg_age: promedio de edad de todos los perros de la misma raza
// (el propio incluido). AVG devuelve numeric; se castea a float8 sin redondeo.
func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			d.id, d.name, d.age, d.breed_id, d.gender,
			d.color, d.favorite_food, d.favorite_toy,
			AVG(o.age)::float8 AS avg_age
		FROM dogs d
		JOIN dogs o ON o.breed_id = d.breed_id
		GROUP BY d.id
		ORDER BY d.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var avg float64
		d, err := scanDog(rows, &avg)
		if err != nil {
			return nil, err
		}
		d.AvgAge = &avg
		out = append(out, d)
	}

	return out, rows.Err()
}

// GetByID anota same_breed_count (mínimo 1: el propio perro).
func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			d.id, d.name, d.age, d.breed_id, d.gender,
			d.color, d.favorite_food, d.favorite_toy,
			COUNT(o.id) AS same_breed_count
		FROM dogs d
		JOIN dogs o ON o.breed_id = d.breed_id
		WHERE d.id = $1
		GROUP BY d.id
	`, id)

	var count int
	d, err := scanDog(row, &count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, errs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	d.SameBreedCount = &count
	return d, nil
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO dogs (
			name, age, breed_id, gender,
			color, favorite_food, favorite_toy
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		d.Name,
		d.Age,
		d.BreedID,
		string(d.Gender),
		d.Color,
		d.FavoriteFood,
		d.FavoriteToy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, d.BreedID)
	}
	return id, nil
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			age = $3,
			breed_id = $4,
			gender = $5,
			color = $6,
			favorite_food = $7,
			favorite_toy = $8
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.Age,
		d.BreedID,
		string(d.Gender),
		d.Color,
		d.FavoriteFood,
		d.FavoriteToy,
	)
	if err != nil {
		return mapPgError(err, d.BreedID)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// scanDog lee las columnas comunes más una anotación al final.
func scanDog(row rowScanner, annotation any) (dogs.Dog, error) {
	var d dogs.Dog
	var gender string
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Age,
		&d.BreedID,
		&gender,
		&d.Color,
		&d.FavoriteFood,
		&d.FavoriteToy,
		annotation,
	); err != nil {
		return dogs.Dog{}, err
	}
	d.Gender = dogs.Gender(gender)
	return d, nil
}
