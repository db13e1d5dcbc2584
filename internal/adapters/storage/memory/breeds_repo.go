package memory

import (
	"context"
	"sort"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/errs"
)

type breedRepo struct {
	s *Store
}

func NewBreedRepo(s *Store) breeds.Repository {
	return &breedRepo{s: s}
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[int64]int, len(r.s.breeds))
	for _, d := range r.s.dogs {
		counts[d.BreedID]++
	}

	out := make([]breeds.Breed, 0, len(r.s.breeds))
	for _, b := range r.s.breeds {
		b.DogCount = counts[b.ID]
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return breeds.Breed{}, errs.ErrNotFound
	}
	b.DogCount, _ = r.s.cohort(id)
	return b, nil
}

func (r *breedRepo) Create(ctx context.Context, b breeds.Breed) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.breedSeq++
	b.ID = r.s.breedSeq
	b.DogCount = 0
	r.s.breeds[b.ID] = b
	return b.ID, nil
}

func (r *breedRepo) Update(ctx context.Context, b breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.breeds[b.ID]; !exists {
		return errs.ErrNotFound
	}
	b.DogCount = 0
	r.s.breeds[b.ID] = b
	return nil
}

// Delete borra la raza y sus perros (ON DELETE CASCADE).
func (r *breedRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.breeds[id]; !exists {
		return errs.ErrNotFound
	}
	for dogID, d := range r.s.dogs {
		if d.BreedID == id {
			delete(r.s.dogs, dogID)
		}
	}
	delete(r.s.breeds, id)
	return nil
}
