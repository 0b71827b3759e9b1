package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// GetPreRegistrationHandler serves the suggestion lists.
func GetPreRegistrationHandler(suggestions *usecase.Suggestions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, suggestions.Get(r.Context()))
	}
}

// PutPreRegistrationHandler replaces the whole suggestion document.
func PutPreRegistrationHandler(suggestions *usecase.Suggestions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data entity.PreRegistrationData
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			writeError(w, http.StatusBadRequest, "invalid pre-registration payload")
			return
		}

		if err := suggestions.Update(r.Context(), &data); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, &data)
	}
}

// AddSuggestionHandler appends one value to a category list.
func AddSuggestionHandler(suggestions *usecase.Suggestions) http.HandlerFunc {
	type request struct {
		Category string `json:"category"`
		Value    string `json:"value"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid suggestion payload")
			return
		}

		if err := suggestions.AddItem(r.Context(), req.Category, req.Value); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeData(w, suggestions.Get(r.Context()))
	}
}

func suggestionIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

// RemoveSuggestionHandler drops one value from a category list.
func RemoveSuggestionHandler(suggestions *usecase.Suggestions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := suggestionIndex(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid suggestion index")
			return
		}

		if err := suggestions.RemoveItem(r.Context(), chi.URLParam(r, "category"), index); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeData(w, suggestions.Get(r.Context()))
	}
}

// RenameSuggestionHandler replaces one value in a category list.
func RenameSuggestionHandler(suggestions *usecase.Suggestions) http.HandlerFunc {
	type request struct {
		Value string `json:"value"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := suggestionIndex(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid suggestion index")
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid suggestion payload")
			return
		}

		if err := suggestions.RenameItem(r.Context(), chi.URLParam(r, "category"), index, req.Value); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeData(w, suggestions.Get(r.Context()))
	}
}
