package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/controller"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/repository"
	"github.com/unclebandit/influencer-admin/internal/service"
)

func newRouter(store repository.Store) http.Handler {
	svc := service.NewRecordService(store, nil, nil, zap.NewNop())
	ctrl := &controller.RecordController{RecordService: svc, Logger: zap.NewNop()}
	r := chi.NewRouter()
	ctrl.Routes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	}
	return w, decoded
}

func TestCreate_ReturnsNewID(t *testing.T) {
	h := newRouter(repository.NewMemoryStore().Store())

	w, body := do(t, h, http.MethodPost, "/api/brands", `{"brand_name":"Acme","industry":"Retail"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, float64(4), body["newId"])
}

func TestCreate_Errors(t *testing.T) {
	h := newRouter(repository.NewMemoryStore().Store())

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"bad json", "/api/brands", `{`, http.StatusBadRequest},
		{"validation", "/api/influencers", `{"first_name":"A"}`, http.StatusBadRequest},
		{"missing reference", "/api/campaigns", `{"brand_id":42,"start_date":"2025-01-01","end_date":"2025-02-01"}`, http.StatusBadRequest},
		{"unknown entity", "/api/widgets", `{}`, http.StatusNotFound},
		{"singular path", "/api/brand", `{"brand_name":"X"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestUpdate(t *testing.T) {
	store := repository.NewMemoryStore()
	h := newRouter(store.Store())

	w, body := do(t, h, http.MethodPut, "/api/collaborations/2",
		`{"influencer_id":2,"campaign_id":2,"agreed_amount":3000,"approval_status":"Approved","dead_line":null,"deliverables":"2 reels"}`)
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "collaboration updated successfully", body["message"])

	snap, _ := store.Load(context.Background())
	c := snap.Collaborations[1]
	assert.Equal(t, model.ApprovalApproved, c.ApprovalStatus)
	assert.Nil(t, c.DeadLine)
	assert.Equal(t, "3000", c.AgreedAmount.String())
}

func TestUpdate_Errors(t *testing.T) {
	h := newRouter(repository.NewMemoryStore().Store())

	w, _ := do(t, h, http.MethodPut, "/api/brands/abc", `{"brand_name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := do(t, h, http.MethodPut, "/api/brands/99", `{"brand_name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "brand with ID 99 not found", body["error"])
}

func TestDelete(t *testing.T) {
	h := newRouter(repository.NewMemoryStore().Store())

	w, body := do(t, h, http.MethodDelete, "/api/payments/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "payment deleted successfully", body["message"])

	w, _ = do(t, h, http.MethodDelete, "/api/payments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, h, http.MethodDelete, "/api/payments/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// FailingRepo simulates a store outage
type FailingRepo struct{}

func (FailingRepo) Insert(context.Context, model.Record) (int64, error) {
	return 0, errors.New("connection refused")
}
func (FailingRepo) Replace(context.Context, int64, model.Record) error { return errors.New("connection refused") }
func (FailingRepo) Delete(context.Context, int64) error { return errors.New("connection refused") }

func TestStoreFailureIs500(t *testing.T) {
	store := repository.NewMemoryStore().Store()
	store.Records[model.EntityPost] = FailingRepo{}
	h := newRouter(store)

	w, body := do(t, h, http.MethodDelete, "/api/posts/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", body["error"])
}
