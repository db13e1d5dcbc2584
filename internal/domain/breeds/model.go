package breeds

import "strings"

// Size define la categoría de tamaño de una raza.
type Size string

const (
	SizeTiny   Size = "t"
	SizeSmall  Size = "s"
	SizeMedium Size = "m"
	SizeLarge  Size = "l"
)

// ParseSize acepta el código ("t") o el nombre largo ("tiny").
func ParseSize(s string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "tiny":
		return SizeTiny, true
	case "s", "small":
		return SizeSmall, true
	case "m", "medium":
		return SizeMedium, true
	case "l", "large":
		return SizeLarge, true
	default:
		return "", false
	}
}

const (
	MinRating = 1
	MaxRating = 5

	MaxNameLength = 127
)

// Breed representa una raza con sus características (ratings 1..5).
type Breed struct {
	ID   int64
	Name string
	Size Size

	Friendliness   int
	Trainability   int
	SheddingAmount int
	ExerciseNeeds  int

	// DogCount no se persiste; lo calcula el repo en lecturas.
	DogCount int
}
