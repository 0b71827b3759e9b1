package api

import (
	"net/http"

	"transcontrol-service/internal/usecase"
	"transcontrol-service/pkg/logger"
	"transcontrol-service/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies bundles everything the router needs.
type Dependencies struct {
	Worksheet   *usecase.Worksheet
	Importer    *usecase.Importer
	Planner     *usecase.Planner
	Reports     *usecase.Reports
	Dashboard   *usecase.Dashboard
	Suggestions *usecase.Suggestions
	Logger      logger.Logger
	Metrics     *metrics.Metrics
}

// NewRouter wires every operation of the service surface.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(RequestMetrics(deps.Metrics))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/status-entries", func(r chi.Router) {
			r.Get("/", ListStatusEntriesHandler(deps.Worksheet))
			r.Post("/", CreateStatusEntryHandler(deps.Worksheet))
			r.Get("/fields", StatusFieldsHandler())
			r.Patch("/{id}", UpdateStatusEntryHandler(deps.Worksheet))
			r.Delete("/{id}", DeleteStatusEntryHandler(deps.Worksheet))
		})

		r.Route("/imports", func(r chi.Router) {
			r.Get("/", ListImportedHandler(deps.Importer))
			r.Post("/preview", PreviewImportHandler(deps.Importer))
			r.Post("/", ConfirmImportHandler(deps.Importer))
			r.Delete("/", ResetImportHandler(deps.Importer))
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", ListSchedulesHandler(deps.Planner))
			r.Post("/", CreateScheduleHandler(deps.Planner))

			r.Route("/draft", func(r chi.Router) {
				r.Get("/", GetDraftHandler(deps.Planner))
				r.Post("/", NewDraftHandler(deps.Planner))
				r.Patch("/", SetDraftDateHandler(deps.Planner))
				r.Post("/commit", CommitDraftHandler(deps.Planner))
				r.Post("/vehicles", AddDraftVehicleHandler(deps.Planner))
				r.Put("/vehicles/{vehicleId}", UpdateDraftVehicleHandler(deps.Planner))
				r.Delete("/vehicles/{vehicleId}", RemoveDraftVehicleHandler(deps.Planner))
				r.Post("/vehicles/{vehicleId}/destinations", AddDraftDestinationHandler(deps.Planner))
				r.Put("/vehicles/{vehicleId}/destinations/{destinationId}", UpdateDraftDestinationHandler(deps.Planner))
				r.Delete("/vehicles/{vehicleId}/destinations/{destinationId}", RemoveDraftDestinationHandler(deps.Planner))
			})

			r.Delete("/{id}", DeleteScheduleHandler(deps.Planner))
			r.Get("/{id}/message", ScheduleMessageHandler(deps.Reports))
			r.Post("/{id}/vehicles/{vehicleId}/toggle", ToggleVehicleHandler(deps.Planner))
			r.Post("/{id}/vehicles/{vehicleId}/complete", CompleteVehicleHandler(deps.Planner))
		})

		r.Route("/preregistration", func(r chi.Router) {
			r.Get("/", GetPreRegistrationHandler(deps.Suggestions))
			r.Put("/", PutPreRegistrationHandler(deps.Suggestions))
			r.Post("/items", AddSuggestionHandler(deps.Suggestions))
			r.Put("/items/{category}/{index}", RenameSuggestionHandler(deps.Suggestions))
			r.Delete("/items/{category}/{index}", RemoveSuggestionHandler(deps.Suggestions))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/chat", ChatReportHandler(deps.Reports))
			r.Get("/status.csv", StatusCSVHandler(deps.Reports, "status-diario"))
			r.Get("/schedules.csv", SchedulesCSVHandler(deps.Reports, "programacoes-diarias"))
		})

		r.Get("/dashboard", DashboardHandler(deps.Dashboard))
	})

	return r
}
