package cows

import (
	"net/http"
	"time"

	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cows", func(cr chi.Router) {
		cr.Get("/", listCowsHandler(svc))
		cr.Post("/", createCowHandler(svc))

		cr.Get("/{cowID}", getCowHandler(svc))
		cr.Put("/{cowID}", updateCowHandler(svc))
		cr.Delete("/{cowID}", deleteCowHandler(svc))

		// Alta de ternero + vínculo con la madre en un solo paso
		cr.Post("/{cowID}/calves", addCalfHandler(svc))
	})
}

type linkedCalfResponse struct {
	CalfID string `json:"calfId"`
	Name   string `json:"name,omitempty"`
	Image1 string `json:"image1,omitempty"`
}

// cowResponse es la representación pública de una vaca.
type cowResponse struct {
	ID             string   `json:"id"`
	CowID          *string  `json:"cowId"`
	Name           string   `json:"name"`
	Breed          string   `json:"breed"`
	Age            *float64 `json:"age"`
	Weight         *float64 `json:"weight"`
	MilkProduction *float64 `json:"milkProduction"`
	Image1         string   `json:"image1"`
	Image2         string   `json:"image2"`

	Medicines         []livestock.Medicine        `json:"medicines"`
	MedicineToConsume []livestock.PlannedMedicine `json:"medicineToConsume"`
	Pregnancies       []Pregnancy                 `json:"pregnancies"`

	BreedingDate                      *time.Time `json:"breedingDate"`
	EmbryonicDeathDate                *time.Time `json:"embryonicDeathDate"`
	ExpectedCalvingDate               *time.Time `json:"expectedCalvingDate"`
	EarlyDewormingDate                *time.Time `json:"earlyDewormingDate"`
	PreCalvingMetabolicSupplimentDate *time.Time `json:"preCalvingMetabolicSupplimentDate"`
	LateDewormingDate                 *time.Time `json:"lateDewormingDate"`
	CalvingDate                       *time.Time `json:"calvingDate"`
	CalvingCount                      int        `json:"calvingCount"`
	IsFertilityConfirmed              bool       `json:"isFertilityConfirmed"`

	LinkedCalves []linkedCalfResponse `json:"linkedCalves"`

	IsPregnant bool      `json:"isPregnant"`
	IsSick     bool      `json:"isSick"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type addCalfResponse struct {
	Cow  cowResponse `json:"cow"`
	Calf any         `json:"calf"`
}

// listCowsHandler godoc
// @Summary Listar vacas
// @Description Filtros opcionales combinados con AND, ordenados por alta más reciente. Los flags son tri-estado.
// @Tags cows
// @Produce json
// @Param name query string false "Substring del nombre (case-insensitive)"
// @Param isSick query string false "true | false"
// @Param isPregnant query string false "true | false"
// @Param isFertilityConfirmed query string false "true | false"
// @Param ageMin query number false "Edad mínima (inclusive)"
// @Param ageMax query number false "Edad máxima (inclusive)"
// @Param weightMin query number false "Peso mínimo (inclusive)"
// @Param weightMax query number false "Peso máximo (inclusive)"
// @Param milkProductionMin query number false "Producción mínima (inclusive)"
// @Param milkProductionMax query number false "Producción máxima (inclusive)"
// @Param timeInFarmDays query int false "Creadas en los últimos N días"
// @Success 200 {array} cowResponse
// @Failure 400 {object} object "filtro inválido"
// @Failure 500 {object} object "internal error"
// @Router /cows [get]
func listCowsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]cowResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCowResponse(c, nil))
		}
		respond.JSON(w, http.StatusOK, "cows fetched", out)
	}
}

// createCowHandler godoc
// @Summary Registrar vaca
// @Description name e image1 son obligatorios. linkedCalves se valida igual que en la actualización.
// @Tags cows
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la vaca"
// @Success 201 {object} cowResponse
// @Failure 400 {object} object "ValidationError / DuplicateKey / InvalidReference / DuplicateLink"
// @Failure 404 {object} object "linked calf not found"
// @Router /cows [post]
func createCowHandler(svc *Service) http.HandlerFunc {
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

		logger.FromContext(r.Context()).Info("cow created", logger.Fields{"cow_id": c.ID})
		respond.JSON(w, http.StatusCreated, "cow added successfully", toCowResponse(c, svc.LinkedCalves(r.Context(), c)))
	}
}

// getCowHandler godoc
// @Summary Obtener vaca
// @Description Incluye linkedCalves con name e image1 resueltos.
// @Tags cows
// @Produce json
// @Param cowID path string true "ID de la vaca"
// @Success 200 {object} cowResponse
// @Failure 404 {object} object "cow not found"
// @Router /cows/{cowID} [get]
func getCowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "cowID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "cow fetched", toCowResponse(c, svc.LinkedCalves(r.Context(), c)))
	}
}

// updateCowHandler godoc
// @Summary Actualizar vaca
// @Description Reemplazo completo del documento. linkedCalves reemplaza la lista anterior.
// @Tags cows
// @Accept json
// @Produce json
// @Param cowID path string true "ID de la vaca"
// @Param payload body Input true "Estado completo de la vaca"
// @Success 200 {object} cowResponse
// @Failure 400 {object} object "ValidationError / InvalidReference / DuplicateLink / DuplicateKey"
// @Failure 404 {object} object "cow or linked calf not found"
// @Router /cows/{cowID} [put]
func updateCowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := respond.Decode(r, &in); err != nil {
			respond.Error(w, r, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "cowID"), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "cow updated successfully", toCowResponse(c, svc.LinkedCalves(r.Context(), c)))
	}
}

// deleteCowHandler godoc
// @Summary Borrar vaca
// @Tags cows
// @Produce json
// @Param cowID path string true "ID de la vaca"
// @Success 200 {object} object
// @Failure 404 {object} object "cow not found"
// @Router /cows/{cowID} [delete]
func deleteCowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "cowID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("cow deleted", logger.Fields{"cow_id": id})
		respond.JSON(w, http.StatusOK, "cow deleted successfully", nil)
	}
}

// addCalfHandler godoc
// @Summary Registrar ternero de una vaca
// @Description Crea el ternero y lo agrega al final de linkedCalves (merge, no reemplazo).
// @Tags cows
// @Accept json
// @Produce json
// @Param cowID path string true "ID de la vaca"
// @Param payload body calves.Input true "Datos del ternero"
// @Success 201 {object} addCalfResponse
// @Failure 400 {object} object "ValidationError / DuplicateKey"
// @Failure 404 {object} object "cow not found"
// @Router /cows/{cowID}/calves [post]
func addCalfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in calves.Input
		if err := respond.Decode(r, &in); err != nil {
			respond.Error(w, r, err)
			return
		}

		cow, calf, err := svc.AddCalf(r.Context(), chi.URLParam(r, "cowID"), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("calf linked", logger.Fields{"cow_id": cow.ID, "calf_id": calf.ID})
		respond.JSON(w, http.StatusCreated, "calf added and linked successfully", addCalfResponse{
			Cow:  toCowResponse(cow, svc.LinkedCalves(r.Context(), cow)),
			Calf: calfSummary(calf),
		})
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
	if f.IsFertilityConfirmed, err = livestock.ParseFlag("isFertilityConfirmed", q.Get("isFertilityConfirmed")); err != nil {
		return Filter{}, err
	}
	if f.Age, err = livestock.ParseRange("age", q.Get("ageMin"), q.Get("ageMax")); err != nil {
		return Filter{}, err
	}
	if f.Weight, err = livestock.ParseRange("weight", q.Get("weightMin"), q.Get("weightMax")); err != nil {
		return Filter{}, err
	}
	if f.MilkProduction, err = livestock.ParseRange("milkProduction", q.Get("milkProductionMin"), q.Get("milkProductionMax")); err != nil {
		return Filter{}, err
	}
	if f.InFarmDays, err = livestock.ParseDays("timeInFarmDays", q.Get("timeInFarmDays")); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// toCowResponse: si enriched es nil los links salen solo con calfId.
func toCowResponse(c Cow, enriched []LinkedCalf) cowResponse {
	links := make([]linkedCalfResponse, 0, len(c.LinkedCalves))
	if enriched != nil {
		for _, l := range enriched {
			links = append(links, linkedCalfResponse{CalfID: l.CalfID, Name: l.Name, Image1: l.Image1})
		}
	} else {
		for _, l := range c.LinkedCalves {
			links = append(links, linkedCalfResponse{CalfID: l.CalfID})
		}
	}

	return cowResponse{
		ID:                                c.ID,
		CowID:                             c.Tag,
		Name:                              c.Name,
		Breed:                             c.Breed,
		Age:                               c.Age,
		Weight:                            c.Weight,
		MilkProduction:                    c.MilkProduction,
		Image1:                            c.Image1,
		Image2:                            c.Image2,
		Medicines:                         c.Medicines,
		MedicineToConsume:                 c.MedicineToConsume,
		Pregnancies:                       c.Pregnancies,
		BreedingDate:                      c.BreedingDate,
		EmbryonicDeathDate:                c.EmbryonicDeathDate,
		ExpectedCalvingDate:               c.ExpectedCalvingDate,
		EarlyDewormingDate:                c.EarlyDewormingDate,
		PreCalvingMetabolicSupplimentDate: c.PreCalvingMetabolicSupplimentDate,
		LateDewormingDate:                 c.LateDewormingDate,
		CalvingDate:                       c.CalvingDate,
		CalvingCount:                      c.CalvingCount,
		IsFertilityConfirmed:              c.IsFertilityConfirmed,
		LinkedCalves:                      links,
		IsPregnant:                        c.IsPregnant,
		IsSick:                            c.IsSick,
		CreatedAt:                         c.CreatedAt,
		UpdatedAt:                         c.UpdatedAt,
	}
}

func calfSummary(c calves.Calf) map[string]any {
	return map[string]any{
		"id":     c.ID,
		"calfId": c.Tag,
		"name":   c.Name,
		"image1": c.Image1,
	}
}
