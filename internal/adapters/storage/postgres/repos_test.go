package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapPgError(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation, TableName: "dogs", ConstraintName: "dogs_breed_id_fkey"}
	fe, ok := errs.Fields(mapPgError(fk, 7))
	if !ok || fe["breed"] != dogs.InvalidBreedMessage(7) {
		t.Fatalf("fk violation: unexpected %v", fe)
	}

	check := &pgconn.PgError{Code: codeCheckViolation, TableName: "breeds", ConstraintName: "breeds_shedding_amount_check"}
	fe, ok = errs.Fields(mapPgError(check, 0))
	if !ok || fe["shedding_amount"] == "" {
		t.Fatalf("check violation: unexpected %v", fe)
	}

	overflow := &pgconn.PgError{Code: codeNumericOutOfRange, Message: "integer out of range"}
	if got := mapPgError(overflow, 0); !errors.Is(got, errs.ErrValidation) {
		t.Fatalf("numeric overflow: expected validation error, got %v", got)
	}

	other := errors.New("conn reset")
	if got := mapPgError(other, 0); got != other {
		t.Fatalf("non-pg errors must pass through, got %v", got)
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{MaxIdleConns: 50}.withDefaults()
	if o.MaxOpenConns != 10 || o.MaxIdleConns != 10 {
		t.Fatalf("idle conns must be capped by open conns, got %+v", o)
	}
	if o.ConnMaxLifetime != 30*time.Minute || o.PingTimeout != 3*time.Second {
		t.Fatalf("unexpected defaults %+v", o)
	}
}

func TestOpen_InvalidDSN(t *testing.T) {
	if _, err := Open(context.Background(), Options{DSN: "postgres://%zz"}); err == nil {
		t.Fatalf("expected parse error for malformed dsn")
	}
}

// Los tests de integración corren solo con TEST_DB_DSN (base descartable).
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := Open(context.Background(), Options{DSN: dsn, AppName: "dog-breeds-test"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, `TRUNCATE dogs, breeds RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestRepos_AggregatesAndCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	br, dr := NewBreedsRepo(db), NewDogsRepo(db)

	bID, err := br.Create(ctx, breeds.Breed{
		Name: "Breed", Size: breeds.SizeTiny,
		Friendliness: 1, Trainability: 1, SheddingAmount: 1, ExerciseNeeds: 1,
	})
	if err != nil {
		t.Fatalf("create breed: %v", err)
	}

	b, err := br.GetByID(ctx, bID)
	if err != nil || b.DogCount != 0 {
		t.Fatalf("expected dog_count 0, got %+v err=%v", b, err)
	}

	var dogIDs []int64
	for _, age := range []int{10, 20} {
		id, err := dr.Create(ctx, dogs.Dog{
			Name: "Dog", Age: age, BreedID: bID, Gender: dogs.GenderMale,
			Color: "black", FavoriteFood: "food", FavoriteToy: "toy",
		})
		if err != nil {
			t.Fatalf("create dog: %v", err)
		}
		dogIDs = append(dogIDs, id)
	}

	list, err := dr.List(ctx)
	if err != nil {
		t.Fatalf("list dogs: %v", err)
	}
	for _, d := range list {
		if d.AvgAge == nil || *d.AvgAge != 15 {
			t.Fatalf("expected avg_age 15, got %v", d.AvgAge)
		}
	}

	d, err := dr.GetByID(ctx, dogIDs[0])
	if err != nil || d.SameBreedCount == nil || *d.SameBreedCount != 2 {
		t.Fatalf("expected same_breed_count 2, got %+v err=%v", d, err)
	}

	_, err = dr.Create(ctx, dogs.Dog{
		Name: "Ghost", Age: 1, BreedID: bID + 1000, Gender: dogs.GenderFemale,
		Color: "c", FavoriteFood: "f", FavoriteToy: "t",
	})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected fk validation error, got %v", err)
	}

	if err := br.Delete(ctx, bID); err != nil {
		t.Fatalf("delete breed: %v", err)
	}
	for _, id := range dogIDs {
		if _, err := dr.GetByID(ctx, id); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("dog %d should be cascaded, got %v", id, err)
		}
	}
}
