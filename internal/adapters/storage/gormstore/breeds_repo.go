package gormstore

import (
	"context"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/errs"

	"gorm.io/gorm"
)

type BreedsRepo struct {
	db *gorm.DB
}

func NewBreedsRepo(db *gorm.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

type breedAggRow struct {
	ID             int64
	Name           string
	Size           string
	Friendliness   int
	Trainability   int
	SheddingAmount int
	ExerciseNeeds  int
	DogCount       int
}

func (r *BreedsRepo) withCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("breeds AS b").
		Select("b.*, COUNT(d.id) AS dog_count").
		Joins("LEFT JOIN dogs AS d ON d.breed_id = b.id").
		Group("b.id")
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	var rows []breedAggRow
	if err := r.withCount(ctx).Order("b.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]breeds.Breed, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toBreed())
	}
	return out, nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	var rows []breedAggRow
	if err := r.withCount(ctx).Where("b.id = ?", id).Scan(&rows).Error; err != nil {
		return breeds.Breed{}, err
	}
	if len(rows) == 0 {
		return breeds.Breed{}, errs.ErrNotFound
	}
	return rows[0].toBreed(), nil
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) (int64, error) {
	row := breedRow{
		Name:           b.Name,
		Size:           string(b.Size),
		Friendliness:   b.Friendliness,
		Trainability:   b.Trainability,
		SheddingAmount: b.SheddingAmount,
		ExerciseNeeds:  b.ExerciseNeeds,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, translate(err, 0)
	}
	return row.ID, nil
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res := r.db.WithContext(ctx).
		Model(&breedRow{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":            b.Name,
			"size":            string(b.Size),
			"friendliness":    b.Friendliness,
			"trainability":    b.Trainability,
			"shedding_amount": b.SheddingAmount,
			"exercise_needs":  b.ExerciseNeeds,
		})
	if res.Error != nil {
		return translate(res.Error, 0)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete borra perros y raza en una transacción; no depende de que
// la conexión tenga foreign_keys activo.
func (r *BreedsRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("breed_id = ?", id).Delete(&dogRow{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&breedRow{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

func (row breedAggRow) toBreed() breeds.Breed {
	return breeds.Breed{
		ID:             row.ID,
		Name:           row.Name,
		Size:           breeds.Size(row.Size),
		Friendliness:   row.Friendliness,
		Trainability:   row.Trainability,
		SheddingAmount: row.SheddingAmount,
		ExerciseNeeds:  row.ExerciseNeeds,
		DogCount:       row.DogCount,
	}
}
