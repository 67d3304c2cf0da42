package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/respond"
)

// Recover convierte un panic en un 500 con el envelope de la API y lo loguea
// con el logger del request. Va después de RequestLogger.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic", logger.Fields{
				"panic": fmt.Sprint(rec),
				"stack": string(debug.Stack()),
			})
			respond.Error(w, r, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}

