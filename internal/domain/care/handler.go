package care

import (
	"encoding/json"
	"net/http"

	"pet-care-insights/internal/domain/pets"
	"pet-care-insights/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, an *Analyzer, petsSvc *pets.Service) {
	r.Post("/care/analysis", analyzeRecordHandler(an))
	r.Get("/pets/{petID}/analysis", analyzePetHandler(an, petsSvc))
}

// analyzeRecordHandler godoc
// @Summary Analizar un registro de mascota
// @Description Calcula sub-scores, aiScore, recomendaciones y plan de alimentación para el registro enviado. Edad o peso faltantes/no numéricos usan defaults (1 año, 5 kg).
// @Tags care
// @Accept json
// @Produce json
// @Param payload body PetRecord true "Registro de la mascota"
// @Success 200 {object} Report
// @Failure 400 {string} string "invalid json"
// @Router /care/analysis [post]
func analyzeRecordHandler(an *Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec PetRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, an.Analyze(rec))
	}
}

// analyzePetHandler godoc
// @Summary Analizar una mascota registrada
// @Description Lee la mascota del document store y devuelve su análisis. Solo el dueño puede consultarla.
// @Tags care
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Report
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/analysis [get]
func analyzePetHandler(an *Analyzer, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), userID, chi.URLParam(r, "petID"))
		if err != nil {
			pets.WriteLookupError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, an.Analyze(FromPet(p)))
	}
}

// FromPet adapta el documento del store al registro que consume el motor.
func FromPet(p pets.Pet) PetRecord {
	return PetRecord{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Breed:       p.Breed,
		Age:         FlexNumber(p.Age),
		Weight:      FlexNumber(p.Weight),
		OwnerUserID: p.OwnerUserID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
