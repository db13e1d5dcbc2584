package dogs

import "context"

// Repository devuelve errs.ErrNotFound para ids inexistentes y un
// errs.FieldErrors sobre "breed" si la FK no existe al escribir.
type Repository interface {
	// List completa AvgAge (promedio de edad de la raza, incluido el propio perro).
	List(ctx context.Context) ([]Dog, error)
	// GetByID completa SameBreedCount (perros de la misma raza, incluido él).
	GetByID(ctx context.Context, id int64) (Dog, error)
	Create(ctx context.Context, d Dog) (int64, error)
	Update(ctx context.Context, d Dog) error
	Delete(ctx context.Context, id int64) error
}

// BreedChecker evita ciclos de imports (dogs -> breeds).
// Lo implementa *breeds.Service.
type BreedChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
