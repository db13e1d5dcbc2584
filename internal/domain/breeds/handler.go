package breeds

import (
	"net/http"
	"strconv"

	"dog-breeds/internal/errs"
	"dog-breeds/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breed", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc))

		br.Get("/{breedID}", getBreedHandler(svc))
		br.Put("/{breedID}", updateBreedHandler(svc, false))
		br.Patch("/{breedID}", updateBreedHandler(svc, true))
		br.Delete("/{breedID}", deleteBreedHandler(svc))
	})
}

type breedRequest struct {
	Name           *string `json:"name"`
	Size           *string `json:"size"`
	Friendliness   *int    `json:"friendliness"`
	Trainability   *int    `json:"trainability"`
	SheddingAmount *int    `json:"shedding_amount"`
	ExerciseNeeds  *int    `json:"exercise_needs"`
}

type breedResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Size           Size   `json:"size"`
	Friendliness   int    `json:"friendliness"`
	Trainability   int    `json:"trainability"`
	SheddingAmount int    `json:"shedding_amount"`
	ExerciseNeeds  int    `json:"exercise_needs"`
	DogCount       int    `json:"dog_count"`
}

// listBreedsHandler
// @Summary List breeds
// @Description All breeds ordered by id, each with the number of dogs of that breed
// @Tags breeds
// @Produce json
// @Success 200 {array} breedResponse
// @Router /breed/ [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}
		respond.JSON(w, r, http.StatusOK, out)
	}
}

// createBreedHandler
// @Summary Create breed
// @Tags breeds
// @Accept json
// @Produce json
// @Param breed body breedRequest true "Breed"
// @Success 201 {object} breedResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /breed/ [post]
func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req breedRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		b, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, toBreedResponse(b))
	}
}

// getBreedHandler
// @Summary Get breed
// @Tags breeds
// @Produce json
// @Param id path int true "Breed ID"
// @Success 200 {object} breedResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /breed/{id}/ [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := breedID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, toBreedResponse(b))
	}
}

// updateBreedHandler atiende PUT (reemplazo completo) y PATCH (parcial).
// @Summary Update breed
// @Tags breeds
// @Accept json
// @Produce json
// @Param id path int true "Breed ID"
// @Param breed body breedRequest true "Breed"
// @Success 200 {object} breedResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /breed/{id}/ [put]
// @Router /breed/{id}/ [patch]
func updateBreedHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := breedID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req breedRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		var b Breed
		if partial {
			b, err = svc.Patch(r.Context(), id, req.toInput())
		} else {
			b, err = svc.Update(r.Context(), id, req.toInput())
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, toBreedResponse(b))
	}
}

// deleteBreedHandler
// @Summary Delete breed
// @Description Deletes the breed and every dog of that breed
// @Tags breeds
// @Param id path int true "Breed ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /breed/{id}/ [delete]
func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := breedID(r)
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

// ids no numéricos se tratan como inexistentes (404)
func breedID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "breedID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrNotFound
	}
	return id, nil
}

func (req breedRequest) toInput() Input {
	return Input{
		Name:           req.Name,
		Size:           req.Size,
		Friendliness:   req.Friendliness,
		Trainability:   req.Trainability,
		SheddingAmount: req.SheddingAmount,
		ExerciseNeeds:  req.ExerciseNeeds,
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:             b.ID,
		Name:           b.Name,
		Size:           b.Size,
		Friendliness:   b.Friendliness,
		Trainability:   b.Trainability,
		SheddingAmount: b.SheddingAmount,
		ExerciseNeeds:  b.ExerciseNeeds,
		DogCount:       b.DogCount,
	}
}
