package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shembeark/registrations-backend/api/controllers"
	"github.com/shembeark/registrations-backend/api/middleware"
	"github.com/shembeark/registrations-backend/internal/export"
	"github.com/shembeark/registrations-backend/internal/registrations"
	"github.com/shembeark/registrations-backend/pkg/config"
	"github.com/shembeark/registrations-backend/pkg/logger"
)

// RouterParams carry everything the HTTP surface depends on.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	Registrations registrations.Service
	Exports       export.Service
	HealthDeps    map[string]controllers.Pinger
}

func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(params.Logger),
		middleware.RequestID(params.Logger),
		middleware.Logging(params.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(params.Config))
		r.Get("/ready", controllers.HealthReady(params.Config, params.Logger, params.HealthDeps))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/registrations", controllers.CreateRegistration(params.Registrations, params.Logger))
		r.Get("/registrations", controllers.ListRegistrations(params.Registrations, params.Logger))

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.CronAuth(params.Config.Export.CronSecret, params.Logger))
			r.Get("/registrations", controllers.TriggerExport(params.Exports, params.Logger))
			r.Post("/registrations", controllers.TriggerExport(params.Exports, params.Logger))
		})
	})

	return r
}
