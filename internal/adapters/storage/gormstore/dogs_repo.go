package gormstore

import (
	"context"

	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DogsRepo struct {
	db *gorm.DB
}

func NewDogsRepo(db *gorm.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

type dogAggRow struct {
	ID           int64
	Name         string
	Age          int
	BreedID      int64
	Gender       string
	Color        string
	FavoriteFood string
	FavoriteToy  string

	AvgAge         float64
	SameBreedCount int
}

// cohort une cada perro con todos los de su raza (él incluido).
func (r *DogsRepo) cohort(ctx context.Context, annotation string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("dogs AS d").
		Select("d.id, d.name, d.age, d.breed_id, d.gender, d.color, d.favorite_food, d.favorite_toy, " + annotation).
		Joins("JOIN dogs AS o ON o.breed_id = d.breed_id").
		Group("d.id")
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	var rows []dogAggRow
	err := r.cohort(ctx, "AVG(o.age) AS avg_age").
		Order("d.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dogs.Dog, 0, len(rows))
	for _, row := range rows {
		d := row.toDog()
		avg := row.AvgAge
		d.AvgAge = &avg
		out = append(out, d)
	}
	return out, nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	var rows []dogAggRow
	err := r.cohort(ctx, "COUNT(o.id) AS same_breed_count").
		Where("d.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return dogs.Dog{}, err
	}
	if len(rows) == 0 {
		return dogs.Dog{}, errs.ErrNotFound
	}

	d := rows[0].toDog()
	n := rows[0].SameBreedCount
	d.SameBreedCount = &n
	return d, nil
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (int64, error) {
	row := toDogRow(d)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return 0, translate(err, d.BreedID)
	}
	return row.ID, nil
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res := r.db.WithContext(ctx).
		Model(&dogRow{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"name":          d.Name,
			"age":           d.Age,
			"breed_id":      d.BreedID,
			"gender":        string(d.Gender),
			"color":         d.Color,
			"favorite_food": d.FavoriteFood,
			"favorite_toy":  d.FavoriteToy,
		})
	if res.Error != nil {
		return translate(res.Error, d.BreedID)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&dogRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func toDogRow(d dogs.Dog) dogRow {
	return dogRow{
		ID:           d.ID,
		Name:         d.Name,
		Age:          d.Age,
		BreedID:      d.BreedID,
		Gender:       string(d.Gender),
		Color:        d.Color,
		FavoriteFood: d.FavoriteFood,
		FavoriteToy:  d.FavoriteToy,
	}
}

func (row dogAggRow) toDog() dogs.Dog {
	return dogs.Dog{
		ID:           row.ID,
		Name:         row.Name,
		Age:          row.Age,
		BreedID:      row.BreedID,
		Gender:       dogs.Gender(row.Gender),
		Color:        row.Color,
		FavoriteFood: row.FavoriteFood,
		FavoriteToy:  row.FavoriteToy,
	}
}
