package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"transcontrol-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// ListSchedulesHandler returns all schedules, newest first.
func ListSchedulesHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, planner.List(r.Context()))
	}
}

// CreateScheduleHandler validates a submitted draft and persists the
// conforming vehicles. A draft with zero complete vehicles is rejected.
func CreateScheduleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft usecase.ScheduleDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid schedule payload")
			return
		}

		schedule, err := planner.Create(r.Context(), draft)
		if err != nil {
			if errors.Is(err, usecase.ErrNoCompleteVehicles) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: schedule})
	}
}

// GetDraftHandler returns the builder state, creating a fresh draft when
// none is open.
func GetDraftHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, planner.Draft())
	}
}

// NewDraftHandler resets the builder to one blank vehicle. An empty date
// defaults to the reference date.
func NewDraftHandler(planner *usecase.Planner) http.HandlerFunc {
	type request struct {
		Date string `json:"date"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&req)
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: planner.NewDraft(req.Date)})
	}
}

// SetDraftDateHandler changes the date of the open draft.
func SetDraftDateHandler(planner *usecase.Planner) http.HandlerFunc {
	type request struct {
		Date string `json:"date"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid draft payload")
			return
		}
		planner.SetDraftDate(req.Date)
		writeData(w, planner.Draft())
	}
}

// draftError maps builder session errors onto response codes.
func draftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrLastVehicle), errors.Is(err, usecase.ErrLastDestination):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

// AddDraftVehicleHandler appends a blank vehicle to the open draft.
func AddDraftVehicleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicle, err := planner.AddVehicle()
		if err != nil {
			draftError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: vehicle})
	}
}

// RemoveDraftVehicleHandler drops one vehicle, refusing to leave zero.
func RemoveDraftVehicleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := planner.RemoveVehicle(chi.URLParam(r, "vehicleId")); err != nil {
			draftError(w, err)
			return
		}
		writeData(w, planner.Draft())
	}
}

// UpdateDraftVehicleHandler sets the identification fields of one vehicle.
func UpdateDraftVehicleHandler(planner *usecase.Planner) http.HandlerFunc {
	type request struct {
		Plate  string `json:"plate"`
		Driver string `json:"driver"`
		Origin string `json:"origin"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid vehicle payload")
			return
		}
		if err := planner.UpdateVehicle(chi.URLParam(r, "vehicleId"), req.Plate, req.Driver, req.Origin); err != nil {
			draftError(w, err)
			return
		}
		writeData(w, planner.Draft())
	}
}

// AddDraftDestinationHandler appends a blank stop to one vehicle.
func AddDraftDestinationHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dest, err := planner.AddDestination(chi.URLParam(r, "vehicleId"))
		if err != nil {
			draftError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: dest})
	}
}

// RemoveDraftDestinationHandler drops one stop, refusing to leave zero.
func RemoveDraftDestinationHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := planner.RemoveDestination(chi.URLParam(r, "vehicleId"), chi.URLParam(r, "destinationId")); err != nil {
			draftError(w, err)
			return
		}
		writeData(w, planner.Draft())
	}
}

// UpdateDraftDestinationHandler sets the fields of one stop.
func UpdateDraftDestinationHandler(planner *usecase.Planner) http.HandlerFunc {
	type request struct {
		Name        string `json:"name"`
		Time        string `json:"time"`
		Observation string `json:"observation"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid destination payload")
			return
		}
		if err := planner.UpdateDestination(chi.URLParam(r, "vehicleId"), chi.URLParam(r, "destinationId"), req.Name, req.Time, req.Observation); err != nil {
			draftError(w, err)
			return
		}
		writeData(w, planner.Draft())
	}
}

// CommitDraftHandler validates and persists the open draft, resetting the
// builder on success.
func CommitDraftHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedule, err := planner.CreateFromDraft(r.Context())
		if err != nil {
			if errors.Is(err, usecase.ErrNoCompleteVehicles) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			draftError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, APIResponse{Status: statusOK, Data: schedule})
	}
}

// DeleteScheduleHandler removes a schedule wholesale.
func DeleteScheduleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := planner.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"id": id})
	}
}

// ToggleVehicleHandler strictly flips one vehicle's transit status.
func ToggleVehicleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID := chi.URLParam(r, "id")
		vehicleID := chi.URLParam(r, "vehicleId")

		status, err := planner.ToggleVehicleStatus(r.Context(), scheduleID, vehicleID)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"status": string(status)})
	}
}

// CompleteVehicleHandler is the one-way dashboard shortcut.
func CompleteVehicleHandler(planner *usecase.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID := chi.URLParam(r, "id")
		vehicleID := chi.URLParam(r, "vehicleId")

		if err := planner.CompleteVehicle(r.Context(), scheduleID, vehicleID); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"status": "CONCLUIDO"})
	}
}

// ScheduleMessageHandler renders one schedule as a clipboard-ready chat
// message.
func ScheduleMessageHandler(reports *usecase.Reports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		message, err := reports.ScheduleMessage(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeData(w, map[string]string{"message": message})
	}
}
