package api

import (
	"encoding/json"
	"net/http"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// APIResponse is the JSON envelope of every endpoint.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Status: statusOK, Data: data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{Status: statusError, Message: message})
}
