package memory

import (
	"sync"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/domain/dogs"
)

// Store es la "base" in-memory compartida por los repos de breeds y dogs.
// Un solo lock para ambas tablas: el cascade y la FK se resuelven atómicamente.
type Store struct {
	mu sync.RWMutex

	breeds map[int64]breeds.Breed
	dogs   map[int64]dogs.Dog

	// secuencias tipo BIGSERIAL (nunca se reutilizan ids)
	breedSeq int64
	dogSeq   int64
}

func NewStore() *Store {
	return &Store{
		breeds: make(map[int64]breeds.Breed),
		dogs:   make(map[int64]dogs.Dog),
	}
}

// cohort devuelve cantidad y suma de edades de los perros de una raza.
// Requiere el lock tomado.
func (s *Store) cohort(breedID int64) (count int, ageSum int) {
	for _, d := range s.dogs {
		if d.BreedID == breedID {
			count++
			ageSum += d.Age
		}
	}
	return count, ageSum
}
