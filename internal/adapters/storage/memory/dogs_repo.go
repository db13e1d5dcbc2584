package memory

import (
	"context"
	"sort"

	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"
)

type dogRepo struct {
	s *Store
}

func NewDogRepo(s *Store) dogs.Repository {
	return &dogRepo{s: s}
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type agg struct{ count, sum int }
	byBreed := map[int64]agg{}
	for _, d := range r.s.dogs {
		a := byBreed[d.BreedID]
		a.count++
		a.sum += d.Age
		byBreed[d.BreedID] = a
	}

	out := make([]dogs.Dog, 0, len(r.s.dogs))
	for _, d := range r.s.dogs {
		a := byBreed[d.BreedID]
		avg := float64(a.sum) / float64(a.count)
		d.AvgAge = &avg
		d.SameBreedCount = nil
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *dogRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.dogs[id]
	if !ok {
		return dogs.Dog{}, errs.ErrNotFound
	}
	n, _ := r.s.cohort(d.BreedID)
	d.AvgAge = nil
	d.SameBreedCount = &n
	return d, nil
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[d.BreedID]; !ok {
		return 0, errs.Field("breed", dogs.InvalidBreedMessage(d.BreedID))
	}

	r.s.dogSeq++
	d.ID = r.s.dogSeq
	d.AvgAge, d.SameBreedCount = nil, nil
	r.s.dogs[d.ID] = d
	return d.ID, nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.dogs[d.ID]; !exists {
		return errs.ErrNotFound
	}
	if _, ok := r.s.breeds[d.BreedID]; !ok {
		return errs.Field("breed", dogs.InvalidBreedMessage(d.BreedID))
	}

	d.AvgAge, d.SameBreedCount = nil, nil
	r.s.dogs[d.ID] = d
	return nil
}

func (r *dogRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.dogs[id]; !exists {
		return errs.ErrNotFound
	}
	delete(r.s.dogs, id)
	return nil
}
