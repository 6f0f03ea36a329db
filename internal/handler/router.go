package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/controller"
	"github.com/unclebandit/influencer-admin/internal/middleware"
	"github.com/unclebandit/influencer-admin/internal/service"
)

// NewRouter assembles the record store API.
func NewRouter(svc *service.RecordService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	NewDataHandler(svc, logger).Routes(r)
	(&controller.RecordController{RecordService: svc, Logger: logger}).Routes(r)
	return r
}
