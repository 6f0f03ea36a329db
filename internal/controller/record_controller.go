// internal/controller/record_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/service"
)

// RecordController serves create, update and delete for all six entities
// under /api/{plural}.
type RecordController struct {
	RecordService *service.RecordService
	Logger        *zap.Logger
}

// Routes registers the entity routes on r.
func (c *RecordController) Routes(r chi.Router) {
	r.Post("/api/{entity}", c.Create)
	r.Put("/api/{entity}/{id}", c.Update)
	r.Delete("/api/{entity}/{id}", c.Delete)
}

// entityParam resolves the plural path segment. Singular names are not routes.
func entityParam(r *http.Request) (model.Entity, bool) {
	segment := chi.URLParam(r, "entity")
	e, err := model.ParseEntity(segment)
	if err != nil || e.Path() != segment {
		return "", false
	}
	return e, true
}

func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.NewValidation("invalid id %q", idStr)
	}
	return id, nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no route for %s", r.URL.Path)})
}

func (c *RecordController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if StatusFor(err) == http.StatusInternalServerError {
		c.Logger.Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	WriteError(w, err)
}

// Create responds 201 {"newId": id}.
func (c *RecordController) Create(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityParam(r)
	if !ok {
		notFound(w, r)
		return
	}

	id, err := c.RecordService.Create(r.Context(), entity, r.Body)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]int64{"newId": id})
}

func (c *RecordController) Update(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityParam(r)
	if !ok {
		notFound(w, r)
		return
	}
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.RecordService.Update(r.Context(), entity, id, r.Body); err != nil {
		c.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%s updated successfully", entity.Singular())})
}

func (c *RecordController) Delete(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityParam(r)
	if !ok {
		notFound(w, r)
		return
	}
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.RecordService.Delete(r.Context(), entity, id); err != nil {
		c.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%s deleted successfully", entity.Singular())})
}
