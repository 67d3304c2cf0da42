package router

import (
	"net/http"

	mem "livestock-records/internal/adapters/storage/memory"
	"livestock-records/internal/domain/calves"
	"livestock-records/internal/domain/cows"
	"livestock-records/internal/domain/reports"
	"livestock-records/internal/middleware"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/metrics"

	_ "livestock-records/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Store es lo que el router necesita del Entity Store. Lo cumplen
// memory.Store y sqlstore.Store.
type Store interface {
	Cows() cows.Repository
	Calves() calves.Repository
}

type Options struct {
	Logger  logger.Logger    // puede ser nil
	Metrics *metrics.Metrics // puede ser nil: sin /metrics

	// Opcional: si no viene, in-memory.
	Store Store
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	// Services por módulo
	calvesSvc := calves.NewService(store.Calves())
	cowsSvc := cows.NewService(store.Cows(), calvesSvc)
	reportsSvc := reports.NewService(cowsSvc, calvesSvc)

	// Rutas por módulo
	calves.RegisterRoutes(r, calvesSvc)
	cows.RegisterRoutes(r, cowsSvc)
	reports.RegisterRoutes(r, reportsSvc)

	return r
}
