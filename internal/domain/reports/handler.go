package reports

import (
	"net/http"

	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", getReportHandler(svc))
		rr.Get("/{section}", getSectionHandler(svc))
		rr.Post("/", applyReproductiveHandler(svc))
	})
}

type reproductiveRequest struct {
	ReproductiveRecords []ReproductiveRecordInput `json:"reproductiveRecords"`
}

// getReportHandler godoc
// @Summary Reporte agregado del rodeo
// @Description Totales, promedio de leche (null sin vacas), salud, medicación y proyecciones por vaca.
// @Tags reports
// @Produce json
// @Success 200 {object} Report
// @Failure 500 {object} object "internal error"
// @Router /reports [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Generate(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "report generated", rep)
	}
}

// getSectionHandler godoc
// @Summary Sección del reporte
// @Tags reports
// @Produce json
// @Param section path string true "overview | basic-info | reproductive | health | medicines"
// @Success 200 {object} object
// @Failure 400 {object} object "invalid report type"
// @Failure 500 {object} object "internal error"
// @Router /reports/{section} [get]
func getSectionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		data, err := svc.Section(r.Context(), section)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, "report generated", data)
	}
}

// applyReproductiveHandler godoc
// @Summary Carga masiva de registros reproductivos
// @Description Actualiza fechas de servicio a parto, calvingCount e isFertilityConfirmed de vacas existentes (por name y cowId).
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body reproductiveRequest true "reproductiveRecords"
// @Success 200 {object} ReproductionResult
// @Failure 400 {object} object "invalid report data format"
// @Failure 500 {object} object "internal error"
// @Router /reports [post]
func applyReproductiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reproductiveRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
		if req.ReproductiveRecords == nil {
			respond.Error(w, r, livestock.Errorf(livestock.KindValidation, "invalid report data format"))
			return
		}

		res, err := svc.ApplyReproductive(r.Context(), req.ReproductiveRecords)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("reproductive records applied", logger.Fields{
			"updated": res.Updated,
			"skipped": len(res.Skipped),
		})
		respond.JSON(w, http.StatusOK, "report data successfully saved", res)
	}
}
