package dogs

import (
	"net/http"
	"strconv"

	"dog-breeds/internal/errs"
	"dog-breeds/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dog", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))

		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc, false))
		dr.Patch("/{dogID}", updateDogHandler(svc, true))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type dogRequest struct {
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	Breed        *int64  `json:"breed"`
	Gender       *string `json:"gender"`
	Color        *string `json:"color"`
	FavoriteFood *string `json:"favorite_food"`
	FavoriteToy  *string `json:"favorite_toy"`
}

// dogResponse: avg_age solo aparece en el listado y same_breed_count solo en el detalle.
type dogResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Breed          int64    `json:"breed"`
	Gender         Gender   `json:"gender"`
	Color          string   `json:"color"`
	FavoriteFood   string   `json:"favorite_food"`
	FavoriteToy    string   `json:"favorite_toy"`
	AvgAge         *float64 `json:"avg_age,omitempty"`
	SameBreedCount *int     `json:"same_breed_count,omitempty"`
}

// listDogsHandler
// @Summary List dogs
// @Description All dogs ordered by id, each with the average age of its breed
// @Tags dogs
// @Produce json
// @Success 200 {array} dogResponse
// @Router /dog/ [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		respond.JSON(w, r, http.StatusOK, out)
	}
}

// createDogHandler
// @Summary Create dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param dog body dogRequest true "Dog"
// @Success 201 {object} dogResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /dog/ [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dogRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		d, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, toDogResponse(d))
	}
}

// getDogHandler
// @Summary Get dog
// @Description Dog with the number of dogs sharing its breed (itself included)
// @Tags dogs
// @Produce json
// @Param id path int true "Dog ID"
// @Success 200 {object} dogResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /dog/{id}/ [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := dogID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, toDogResponse(d))
	}
}

// updateDogHandler
// @Summary Update dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param id path int true "Dog ID"
// @Param dog body dogRequest true "Dog"
// @Success 200 {object} dogResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /dog/{id}/ [put]
// @Router /dog/{id}/ [patch]
func updateDogHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := dogID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req dogRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		var d Dog
		if partial {
			d, err = svc.Patch(r.Context(), id, req.toInput())
		} else {
			d, err = svc.Update(r.Context(), id, req.toInput())
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler
// @Summary Delete dog
// @Tags dogs
// @Param id path int true "Dog ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /dog/{id}/ [delete]
func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := dogID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.NoContent(w)
	}
}

func dogID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrNotFound
	}
	return id, nil
}

func (req dogRequest) toInput() Input {
	return Input{
		Name:         req.Name,
		Age:          req.Age,
		BreedID:      req.Breed,
		Gender:       req.Gender,
		Color:        req.Color,
		FavoriteFood: req.FavoriteFood,
		FavoriteToy:  req.FavoriteToy,
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:             d.ID,
		Name:           d.Name,
		Age:            d.Age,
		Breed:          d.BreedID,
		Gender:         d.Gender,
		Color:          d.Color,
		FavoriteFood:   d.FavoriteFood,
		FavoriteToy:    d.FavoriteToy,
		AvgAge:         d.AvgAge,
		SameBreedCount: d.SameBreedCount,
	}
}
