package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"dog-breeds/internal/errs"
)

type Service struct {
	repo   Repository
	breeds BreedChecker
}

func NewService(repo Repository, breeds BreedChecker) *Service {
	return &Service{
		repo:   repo,
		breeds: breeds,
	}
}

// Input: nil = campo no enviado. En create/PUT todos son obligatorios.
type Input struct {
	Name         *string
	Age          *int
	BreedID      *int64
	Gender       *string
	Color        *string
	FavoriteFood *string
	FavoriteToy  *string
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dog, error) {
	if id <= 0 {
		return Dog{}, errs.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Dog, error) {
	d, err := s.build(ctx, Dog{}, in, false)
	if err != nil {
		return Dog{}, err
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return Dog{}, err
	}
	d.ID = id
	return d, nil
}

// Update reemplaza todos los campos (PUT).
func (s *Service) Update(ctx context.Context, id int64, in Input) (Dog, error) {
	return s.save(ctx, id, in, false)
}

// Patch solo toca los campos enviados.
func (s *Service) Patch(ctx context.Context, id int64, in Input) (Dog, error) {
	return s.save(ctx, id, in, true)
}

func (s *Service) save(ctx context.Context, id int64, in Input, partial bool) (Dog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	current.SameBreedCount = nil

	d, err := s.build(ctx, current, in, partial)
	if err != nil {
		return Dog{}, err
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) build(ctx context.Context, d Dog, in Input, partial bool) (Dog, error) {
	fe := errs.FieldErrors{}

	setText(fe, "name", in.Name, &d.Name, partial)
	setText(fe, "color", in.Color, &d.Color, partial)
	setText(fe, "favorite_food", in.FavoriteFood, &d.FavoriteFood, partial)
	setText(fe, "favorite_toy", in.FavoriteToy, &d.FavoriteToy, partial)

	if in.Age != nil {
		d.Age = *in.Age
	} else if !partial {
		fe.Add("age", errs.MsgRequired)
	}

	if in.Gender != nil {
		g, ok := ParseGender(*in.Gender)
		if !ok {
			fe.Add("gender", fmt.Sprintf("%q is not a valid choice", *in.Gender))
		}
		d.Gender = g
	} else if !partial {
		fe.Add("gender", errs.MsgRequired)
	}

	if in.BreedID != nil {
		d.BreedID = *in.BreedID
	} else if !partial {
		fe.Add("breed", errs.MsgRequired)
	}

	if err := Validate(d); err != nil {
		var more errs.FieldErrors
		if errors.As(err, &more) {
			for k, v := range more {
				fe.Add(k, v)
			}
		}
	}

	// FK: solo si el valor es sintácticamente válido
	if _, bad := fe["breed"]; !bad {
		ok, err := s.breeds.Exists(ctx, d.BreedID)
		if err != nil {
			return Dog{}, err
		}
		if !ok {
			fe.Add("breed", InvalidBreedMessage(d.BreedID))
		}
	}

	if err := fe.Err(); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func setText(fe errs.FieldErrors, field string, v *string, dst *string, partial bool) {
	if v == nil {
		if !partial {
			fe.Add(field, errs.MsgRequired)
		}
		return
	}
	*dst = strings.TrimSpace(*v)
}

// InvalidBreedMessage es el mensaje para una FK de raza inexistente.
// Los adapters lo reutilizan cuando la base rechaza la FK.
func InvalidBreedMessage(breedID int64) string {
	return fmt.Sprintf("invalid pk \"%d\" - object does not exist", breedID)
}

// Validate chequea los invariantes de un perro ya armado (sin la FK).
func Validate(d Dog) error {
	fe := errs.FieldErrors{}

	checkText(fe, "name", d.Name)
	checkText(fe, "color", d.Color)
	checkText(fe, "favorite_food", d.FavoriteFood)
	checkText(fe, "favorite_toy", d.FavoriteToy)

	switch {
	case d.Age < 0:
		fe.Add("age", "ensure this value is greater than or equal to 0")
	case d.Age > MaxAge:
		fe.Add("age", fmt.Sprintf("ensure this value is less than or equal to %d", MaxAge))
	}
	if _, ok := ParseGender(string(d.Gender)); !ok {
		fe.Add("gender", fmt.Sprintf("%q is not a valid choice", d.Gender))
	}
	if d.BreedID <= 0 {
		fe.Add("breed", InvalidBreedMessage(d.BreedID))
	}

	return fe.Err()
}

func checkText(fe errs.FieldErrors, field, v string) {
	switch {
	case v == "":
		fe.Add(field, errs.MsgBlank)
	case utf8.RuneCountInString(v) > MaxTextLength:
		fe.Add(field, fmt.Sprintf("ensure this field has no more than %d characters", MaxTextLength))
	}
}
