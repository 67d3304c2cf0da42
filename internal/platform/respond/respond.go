// Package respond centraliza el envelope JSON de la API y el mapeo de errores de dominio a HTTP.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/metrics"
)

type envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    livestock.Kind `json:"code"`
	Message string         `json:"message"`
}

func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, envelope{Success: true, Message: message, Data: data})
}

// Error escribe la respuesta de error. Los errores de store se loguean con detalle
// y el cliente recibe un mensaje genérico.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := livestock.KindOf(err)
	status := Status(err)
	msg := err.Error()
	metrics.FromContext(r.Context()).ObserveError(err)

	if kind == livestock.KindStore {
		logger.FromContext(r.Context()).Error("store error", logger.Fields{"err": err})
		msg = "internal error"
	}

	write(w, status, envelope{
		Success: false,
		Message: msg,
		Error:   &errorBody{Code: kind, Message: msg},
	})
}

func Status(err error) int {
	switch livestock.KindOf(err) {
	case livestock.KindValidation, livestock.KindDuplicateKey,
		livestock.KindInvalidReference, livestock.KindDuplicateLink:
		return http.StatusBadRequest
	case livestock.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Decode lee el body JSON. Los números llegan como json.Number para que la
// normalización decida; campos desconocidos se rechazan.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return livestock.Errorf(livestock.KindValidation, "request body is required")
		}
		return livestock.Errorf(livestock.KindValidation, "invalid json: %s", err.Error())
	}
	return nil
}

func write(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
