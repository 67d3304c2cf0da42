package calves

import (
	"net/http"
	"time"

	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calves", func(cr chi.Router) {
		cr.Get("/", listCalvesHandler(svc))
		cr.Post("/", createCalfHandler(svc))

		cr.Get("/{calfID}", getCalfHandler(svc))
		cr.Put("/{calfID}", updateCalfHandler(svc))
		cr.Delete("/{calfID}", deleteCalfHandler(svc))
	})
}

// calfResponse es la representación pública de un ternero.
type calfResponse struct {
	ID                string                      `json:"id"`
	CalfID            *string                     `json:"calfId"`
	Name              string                      `json:"name"`
	Breed             string                      `json:"breed"`
	Age               *float64                    `json:"age"`
	Weight            *float64                    `json:"weight"`
	Image1            string                      `json:"image1"`
	Image2            string                      `json:"image2"`
	Medicines         []livestock.Medicine        `json:"medicines"`
	MedicineToConsume []livestock.PlannedMedicine `json:"medicineToConsume"`
	IsPregnant        bool                        `json:"isPregnant"`
	IsSick            bool                        `json:"isSick"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

// listCalvesHandler godoc
// @Summary Listar terneros
// @Description Filtros opcionales combinados con AND. isSick/isPregnant son tri-estado (ausente, true, false).
// @Tags calves
// @Produce json
// @Param name query string false "Substring del nombre (case-insensitive)"
// @Param isSick query string false "true | false"
// @Param isPregnant query string false "true | false"
// @Param ageMin query number false "Edad mínima (inclusive)"
// @Param ageMax query number false "Edad máxima (inclusive)"
// @Param weightMin query number false "Peso mínimo (inclusive)"
// @Param weightMax query number false "Peso máximo (inclusive)"
// @Param timeInFarmDays query int false "Creados en los últimos N días"
// @Success 200 {array} calfResponse
// @Failure 400 {object} object "filtro inválido"
// @Failure 500 {object} object "internal error"
// @Router /calves [get]
func listCalvesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]calfResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCalfResponse(c))
		}
		respond.JSON(w, http.StatusOK, "calves fetched", out)
	}
}

// createCalfHandler godoc
// @Summary Registrar ternero
// @Description name e image1 son obligatorios. name y calfId son únicos.
// @Tags calves
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del ternero"
// @Success 201 {object} calfResponse
// @Failure 400 {object} object "ValidationError / DuplicateKey"
// @Failure 500 {object} object "internal error"
// @Router /calves [post]
func createCalfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := respond.Decode(r, &in); err != nil {
			respond.Error(w, r, err)
			return
		}

		c, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("calf created", logger.Fields{"calf_id": c.ID})
		respond.JSON(w, http.StatusCreated, "calf added successfully", toCalfResponse(c))
	}
}

// getCalfHandler godoc
// @Summary Obtener ternero
// @Tags calves
// @Produce json
// @Param calfID path string true "ID del ternero"
// @Success 200 {object} calfResponse
// @Failure 404 {object} object "calf not found"
// @Router /calves/{calfID} [get]
func getCalfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "calfID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "calf fetched", toCalfResponse(c))
	}
}

// updateCalfHandler godoc
// @Summary Actualizar ternero
// @Description Reemplazo completo: los campos omitidos quedan vacíos/false.
// @Tags calves
// @Accept json
// @Produce json
// @Param calfID path string true "ID del ternero"
// @Param payload body Input true "Estado completo del ternero"
// @Success 200 {object} calfResponse
// @Failure 400 {object} object "ValidationError / DuplicateKey"
// @Failure 404 {object} object "calf not found"
// @Router /calves/{calfID} [put]
func updateCalfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := respond.Decode(r, &in); err != nil {
			respond.Error(w, r, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "calfID"), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "calf updated successfully", toCalfResponse(c))
	}
}

// deleteCalfHandler godoc
// @Summary Borrar ternero
// @Description Borra el ternero y lo desvincula de todas las vacas.
// @Tags calves
// @Produce json
// @Param calfID path string true "ID del ternero"
// @Success 200 {object} object
// @Failure 404 {object} object "calf not found"
// @Router /calves/{calfID} [delete]
func deleteCalfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "calfID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("calf deleted", logger.Fields{"calf_id": id})
		respond.JSON(w, http.StatusOK, "calf deleted successfully", nil)
	}
}

func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()

	var f Filter
	var err error
	f.Name = q.Get("name")
	if f.IsSick, err = livestock.ParseFlag("isSick", q.Get("isSick")); err != nil {
		return Filter{}, err
	}
	if f.IsPregnant, err = livestock.ParseFlag("isPregnant", q.Get("isPregnant")); err != nil {
		return Filter{}, err
	}
	if f.Age, err = livestock.ParseRange("age", q.Get("ageMin"), q.Get("ageMax")); err != nil {
		return Filter{}, err
	}
	if f.Weight, err = livestock.ParseRange("weight", q.Get("weightMin"), q.Get("weightMax")); err != nil {
		return Filter{}, err
	}
	if f.InFarmDays, err = livestock.ParseDays("timeInFarmDays", q.Get("timeInFarmDays")); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func toCalfResponse(c Calf) calfResponse {
	return calfResponse{
		ID:                c.ID,
		CalfID:            c.Tag,
		Name:              c.Name,
		Breed:             c.Breed,
		Age:               c.Age,
		Weight:            c.Weight,
		Image1:            c.Image1,
		Image2:            c.Image2,
		Medicines:         c.Medicines,
		MedicineToConsume: c.MedicineToConsume,
		IsPregnant:        c.IsPregnant,
		IsSick:            c.IsSick,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
