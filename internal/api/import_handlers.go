package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"transcontrol-service/internal/usecase"
	"transcontrol-service/pkg/tsv"
)

type importRequest struct {
	Data string `json:"data"`
}

// PreviewImportHandler parses pasted rows without persisting anything.
func PreviewImportHandler(importer *usecase.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid import payload")
			return
		}

		records, err := importer.Preview(req.Data)
		if err != nil {
			if errors.Is(err, tsv.ErrNoData) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeData(w, records)
	}
}

// ListImportedHandler returns the transports currently staged.
func ListImportedHandler(importer *usecase.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := importer.Imported(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, records)
	}
}

// ResetImportHandler clears the staged transports. Worksheet rows survive.
func ResetImportHandler(importer *usecase.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := importer.Reset(r.Context()); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"status": "cleared"})
	}
}

// ConfirmImportHandler runs the two-phase import. A partial failure is
// reported with the counts that were written; nothing is rolled back.
func ConfirmImportHandler(importer *usecase.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid import payload")
			return
		}

		result, err := importer.Confirm(r.Context(), req.Data)
		if err != nil {
			if errors.Is(err, tsv.ErrNoData) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeJSON(w, http.StatusBadGateway, APIResponse{
				Status:  statusError,
				Message: err.Error(),
				Data:    result,
			})
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: result})
	}
}
