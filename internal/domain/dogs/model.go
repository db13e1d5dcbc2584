package dogs

import (
	"math"
	"strings"
)

// Gender define el sexo del perro.
type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
)

func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return GenderMale, true
	case "f", "female":
		return GenderFemale, true
	default:
		return "", false
	}
}

const (
	MaxTextLength = 127

	// age es INTEGER en la base
	MaxAge = math.MaxInt32
)

// Dog representa un perro registrado. BreedID referencia siempre una raza viva.
type Dog struct {
	ID      int64
	Name    string
	Age     int
	BreedID int64
	Gender  Gender

	Color        string
	FavoriteFood string
	FavoriteToy  string

	// Anotaciones (no persistidas):
	// - AvgAge solo en List
	// - SameBreedCount solo en GetByID
	AvgAge         *float64
	SameBreedCount *int
}
