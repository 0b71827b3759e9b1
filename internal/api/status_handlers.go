package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// ListStatusEntriesHandler returns the worksheet rows, optionally filtered
// by date + search term and sorted by one field.
func ListStatusEntriesHandler(worksheet *usecase.Worksheet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := worksheet.List(r.Context())

		q := r.URL.Query()
		if date := q.Get("date"); date != "" {
			entries = worksheet.Filter(entries, date, q.Get("search"))
		}
		if field := q.Get("sort"); field != "" {
			asc := q.Get("dir") != "desc"
			entries = worksheet.SortBy(entries, field, asc)
		}

		writeData(w, entries)
	}
}

// CreateStatusEntryHandler creates a blank PENDENTE row.
func CreateStatusEntryHandler(worksheet *usecase.Worksheet) http.HandlerFunc {
	type request struct {
		TransportDate string `json:"transportDate"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&req)
		}

		entry, err := worksheet.NewEntry(r.Context(), req.TransportDate)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: entry})
	}
}

// UpdateStatusEntryHandler runs a one-shot edit session over a row: the
// current stored row is snapshotted, the patch is buffered and saved.
func UpdateStatusEntryHandler(worksheet *usecase.Worksheet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch entity.StatusEntryPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid patch payload")
			return
		}

		var base *entity.StatusEntry
		for _, e := range worksheet.List(r.Context()) {
			if e.ID == id {
				entry := e
				base = &entry
				break
			}
		}
		if base == nil {
			writeError(w, http.StatusNotFound, "status entry not found")
			return
		}

		worksheet.StartEdit(*base)
		if err := worksheet.Edit(patch); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		merged, err := worksheet.Save(r.Context())
		if err != nil {
			if errors.Is(err, usecase.ErrNoActiveEdit) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		writeData(w, merged)
	}
}

// DeleteStatusEntryHandler removes one row.
func DeleteStatusEntryHandler(worksheet *usecase.Worksheet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := worksheet.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"id": id})
	}
}

// StatusFieldsHandler serves the per-field descriptor table consumed by the
// view layer.
func StatusFieldsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, entity.StatusEntryFields())
	}
}
