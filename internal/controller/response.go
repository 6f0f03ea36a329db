package controller

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
)

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps validation errors to 400, not-found to 404 and everything
// else to 500. The body is always {"error": message}.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}

func StatusFor(err error) int {
	switch {
	case appErrors.IsValidation(err):
		return http.StatusBadRequest
	case appErrors.IsNotFound(err):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
