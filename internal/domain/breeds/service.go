package breeds

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"dog-breeds/internal/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input sirve para create, update (PUT) y patch.
// Punteros: nil = campo no enviado.
type Input struct {
	Name           *string
	Size           *string
	Friendliness   *int
	Trainability   *int
	SheddingAmount *int
	ExerciseNeeds  *int
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	if id <= 0 {
		return Breed{}, errs.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Breed, error) {
	b, err := in.apply(Breed{Size: SizeMedium}, false)
	if err != nil {
		return Breed{}, err
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return Breed{}, err
	}
	b.ID = id
	b.DogCount = 0
	return b, nil
}

// Update reemplaza todos los campos. size es opcional: si no viene, se conserva.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Breed, error) {
	return s.save(ctx, id, in, false)
}

// Patch solo toca los campos enviados.
func (s *Service) Patch(ctx context.Context, id int64, in Input) (Breed, error) {
	return s.save(ctx, id, in, true)
}

func (s *Service) save(ctx context.Context, id int64, in Input, partial bool) (Breed, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Breed{}, err
	}

	b, err := in.apply(current, partial)
	if err != nil {
		return Breed{}, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return Breed{}, err
	}

	// re-leer para devolver dog_count actualizado
	return s.repo.GetByID(ctx, id)
}

// Delete borra la raza y, en cascada, sus perros.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (in Input) apply(b Breed, partial bool) (Breed, error) {
	fe := errs.FieldErrors{}

	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	} else if !partial {
		fe.Add("name", errs.MsgRequired)
	}

	if in.Size != nil {
		size, ok := ParseSize(*in.Size)
		if !ok {
			fe.Add("size", fmt.Sprintf("%q is not a valid choice", *in.Size))
		}
		b.Size = size
	}

	setRating(fe, "friendliness", in.Friendliness, &b.Friendliness, partial)
	setRating(fe, "trainability", in.Trainability, &b.Trainability, partial)
	setRating(fe, "shedding_amount", in.SheddingAmount, &b.SheddingAmount, partial)
	setRating(fe, "exercise_needs", in.ExerciseNeeds, &b.ExerciseNeeds, partial)

	if err := Validate(b); err != nil {
		var more errs.FieldErrors
		if errors.As(err, &more) {
			for k, v := range more {
				fe.Add(k, v)
			}
		}
	}

	if err := fe.Err(); err != nil {
		return Breed{}, err
	}
	return b, nil
}

func setRating(fe errs.FieldErrors, field string, v *int, dst *int, partial bool) {
	if v == nil {
		if !partial {
			fe.Add(field, errs.MsgRequired)
		}
		return
	}
	*dst = *v
}

// Validate chequea los invariantes de una raza ya armada.
// Los adapters de storage no la llaman; confían en el service.
func Validate(b Breed) error {
	fe := errs.FieldErrors{}

	switch {
	case b.Name == "":
		fe.Add("name", errs.MsgBlank)
	case utf8.RuneCountInString(b.Name) > MaxNameLength:
		fe.Add("name", fmt.Sprintf("ensure this field has no more than %d characters", MaxNameLength))
	}

	if _, ok := ParseSize(string(b.Size)); !ok {
		fe.Add("size", fmt.Sprintf("%q is not a valid choice", b.Size))
	}

	checkRating(fe, "friendliness", b.Friendliness)
	checkRating(fe, "trainability", b.Trainability)
	checkRating(fe, "shedding_amount", b.SheddingAmount)
	checkRating(fe, "exercise_needs", b.ExerciseNeeds)

	return fe.Err()
}

func checkRating(fe errs.FieldErrors, field string, v int) {
	if v < MinRating || v > MaxRating {
		fe.Add(field, fmt.Sprintf("ensure this value is between %d and %d", MinRating, MaxRating))
	}
}
