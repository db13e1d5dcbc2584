package memory

import (
	"context"
	"errors"
	"testing"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"
)

func seedBreed(t *testing.T, repo breeds.Repository, name string) int64 {
	t.Helper()

	id, err := repo.Create(context.Background(), breeds.Breed{
		Name:           name,
		Size:           breeds.SizeTiny,
		Friendliness:   1,
		Trainability:   1,
		SheddingAmount: 1,
		ExerciseNeeds:  1,
	})
	if err != nil {
		t.Fatalf("create breed: %v", err)
	}
	return id
}

func seedDog(t *testing.T, repo dogs.Repository, breedID int64, name string, age int) int64 {
	t.Helper()

	id, err := repo.Create(context.Background(), dogs.Dog{
		Name:         name,
		Age:          age,
		BreedID:      breedID,
		Gender:       dogs.GenderMale,
		Color:        "black",
		FavoriteFood: "some food",
		FavoriteToy:  "some toy",
	})
	if err != nil {
		t.Fatalf("create dog: %v", err)
	}
	return id
}

func TestBreedRepo_DogCount(t *testing.T) {
	s := NewStore()
	br, dr := NewBreedRepo(s), NewDogRepo(s)
	ctx := context.Background()

	b1 := seedBreed(t, br, "Breed 1")
	b2 := seedBreed(t, br, "Breed 2")

	got, _ := br.GetByID(ctx, b1)
	if got.DogCount != 0 {
		t.Fatalf("expected dog_count 0, got %d", got.DogCount)
	}

	seedDog(t, dr, b1, "Dog", 10)

	list, _ := br.List(ctx)
	if len(list) != 2 || list[0].ID != b1 || list[1].ID != b2 {
		t.Fatalf("expected breeds ordered by id, got %+v", list)
	}
	if list[0].DogCount != 1 || list[1].DogCount != 0 {
		t.Fatalf("unexpected dog counts: %d, %d", list[0].DogCount, list[1].DogCount)
	}
}

func TestDogRepo_Aggregates(t *testing.T) {
	s := NewStore()
	br, dr := NewBreedRepo(s), NewDogRepo(s)
	ctx := context.Background()

	b := seedBreed(t, br, "Breed")
	other := seedBreed(t, br, "Other")
	d1 := seedDog(t, dr, b, "Dog", 10)
	seedDog(t, dr, b, "Dog 2", 20)
	seedDog(t, dr, other, "Lonely", 3)

	list, err := dr.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 dogs, got %d", len(list))
	}
	for _, d := range list[:2] {
		if d.AvgAge == nil || *d.AvgAge != 15 {
			t.Fatalf("expected avg_age 15 for %s, got %v", d.Name, d.AvgAge)
		}
		if d.SameBreedCount != nil {
			t.Fatalf("list must not carry same_breed_count")
		}
	}
	if *list[2].AvgAge != 3 {
		t.Fatalf("expected avg_age 3 for single-dog breed, got %v", *list[2].AvgAge)
	}

	got, err := dr.GetByID(ctx, d1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SameBreedCount == nil || *got.SameBreedCount != 2 {
		t.Fatalf("expected same_breed_count 2, got %v", got.SameBreedCount)
	}
	if got.AvgAge != nil {
		t.Fatalf("retrieve must not carry avg_age")
	}
}

func TestBreedRepo_DeleteCascades(t *testing.T) {
	s := NewStore()
	br, dr := NewBreedRepo(s), NewDogRepo(s)
	ctx := context.Background()

	b := seedBreed(t, br, "Breed")
	keep := seedBreed(t, br, "Keep")
	ids := []int64{
		seedDog(t, dr, b, "a", 1),
		seedDog(t, dr, b, "b", 2),
		seedDog(t, dr, b, "c", 3),
	}
	survivor := seedDog(t, dr, keep, "d", 4)

	if err := br.Delete(ctx, b); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, id := range ids {
		if _, err := dr.GetByID(ctx, id); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("dog %d should be gone, got %v", id, err)
		}
	}
	if _, err := dr.GetByID(ctx, survivor); err != nil {
		t.Fatalf("dog of another breed must survive: %v", err)
	}
	if err := br.Delete(ctx, b); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestDogRepo_ForeignKey(t *testing.T) {
	s := NewStore()
	dr := NewDogRepo(s)

	_, err := dr.Create(context.Background(), dogs.Dog{Name: "x", BreedID: 99})
	fe, ok := errs.Fields(err)
	if !ok || fe["breed"] == "" {
		t.Fatalf("expected breed validation error, got %v", err)
	}
}

func TestStore_IDsAreNotReused(t *testing.T) {
	s := NewStore()
	br := NewBreedRepo(s)
	ctx := context.Background()

	first := seedBreed(t, br, "a")
	_ = br.Delete(ctx, first)
	second := seedBreed(t, br, "b")

	if second == first {
		t.Fatalf("expected a fresh id, got %d twice", first)
	}
}
