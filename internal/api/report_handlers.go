package api

import (
	"errors"
	"fmt"
	"net/http"

	"transcontrol-service/internal/usecase"
)

func exportMode(r *http.Request) usecase.ExportMode {
	mode := usecase.ExportMode(r.URL.Query().Get("mode"))
	if mode == "" {
		return usecase.ModeAll
	}
	return mode
}

// ChatReportHandler renders the worksheet chat summary for copy-paste.
func ChatReportHandler(reports *usecase.Reports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message, err := reports.ChatSummary(r.Context(), exportMode(r))
		if err != nil {
			if errors.Is(err, usecase.ErrUnknownMode) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"message": message})
	}
}

// StatusCSVHandler streams the worksheet CSV as a download.
func StatusCSVHandler(reports *usecase.Reports, baseName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := reports.StatusCSV(r.Context(), baseName, exportMode(r))
		if err != nil {
			if errors.Is(err, usecase.ErrUnknownMode) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		serveCSV(w, filename, data)
	}
}

// SchedulesCSVHandler streams the flattened schedule CSV as a download.
func SchedulesCSVHandler(reports *usecase.Reports, baseName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := reports.SchedulesCSV(r.Context(), baseName, exportMode(r))
		if err != nil {
			if errors.Is(err, usecase.ErrUnknownMode) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		serveCSV(w, filename, data)
	}
}

func serveCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
