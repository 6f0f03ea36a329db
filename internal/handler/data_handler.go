// internal/handler/data_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/controller"
	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/service"
)

// DataHandler serves the whole-dataset endpoints.
type DataHandler struct {
	Service *service.RecordService
	Logger  *zap.Logger
}

func NewDataHandler(svc *service.RecordService, logger *zap.Logger) *DataHandler {
	return &DataHandler{Service: svc, Logger: logger}
}

func (h *DataHandler) Routes(r chi.Router) {
	r.Get("/api/data", h.GetData)
	r.Post("/api/reset-data", h.ResetData)
	r.Get("/api/activity", h.ListActivity)
	r.Get("/health", h.Health)
}

// GetData returns every record of all six tables in one document.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.Snapshot(r.Context())
	if err != nil {
		h.Logger.Error("Failed to load data", zap.Error(err))
		controller.WriteError(w, err)
		return
	}
	controller.WriteJSON(w, http.StatusOK, snap.Normalize())
}

func (h *DataHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Reset(r.Context()); err != nil {
		h.Logger.Error("Failed to reset data", zap.Error(err))
		controller.WriteError(w, err)
		return
	}
	controller.WriteJSON(w, http.StatusOK, map[string]string{"message": "Data reset to sample successfully"})
}

// ListActivity returns recent change events, newest first. limit defaults
// to 20 and is capped at 100.
func (h *DataHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			controller.WriteError(w, appErrors.NewValidation("invalid limit %q", s))
			return
		}
		limit = n
	}

	items, err := h.Service.Activity(r.Context(), limit)
	if err != nil {
		h.Logger.Error("Failed to load activity", zap.Error(err))
		controller.WriteError(w, err)
		return
	}
	controller.WriteJSON(w, http.StatusOK, items)
}

func (h *DataHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
