package api

import (
	"net/http"

	"transcontrol-service/internal/usecase"
)

// DashboardHandler serves the reference-date reconciliation summary.
func DashboardHandler(dashboard *usecase.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, dashboard.Summary(r.Context()))
	}
}
