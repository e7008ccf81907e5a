package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecourts_backend/internal/feature/cases/adapters"
	"ecourts_backend/internal/feature/cases/adapters/ecourts"
	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/cases/transport/http/dto"
	"ecourts_backend/internal/feature/cases/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockCaseUsecase is a mock implementation of CaseUsecase.
type mockCaseUsecase struct {
	ReconcileFunc  func(ctx context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]entity.Case, error)
	available      bool
}

func (m *mockCaseUsecase) Reconcile(ctx context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error) {
	if m.ReconcileFunc != nil {
		return m.ReconcileFunc(ctx, cnr)
	}
	return &entity.Case{ID: 1, CNR: cnr}, &entity.CaseInfo{CNR: cnr, IsRealData: true}, nil
}

func (m *mockCaseUsecase) ListRecent(ctx context.Context, limit int) ([]entity.Case, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockCaseUsecase) ServiceAvailable(context.Context) bool { return m.available }

func newCaseRouter(uc CaseUsecase) *gin.Engine {
	h := NewCaseHandler(uc)
	r := gin.New()
	r.POST("/api/search", h.Search)
	r.GET("/api/cases", h.List)
	r.GET("/api/service-status", h.ServiceStatus)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSearch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid json", "not-an-object", nil, http.StatusBadRequest, "CNR number is required"},
		{"empty cnr", map[string]string{"cnr": " "}, usecase.ErrInvalidInput, http.StatusBadRequest, "CNR number is required"},
		{"placeholder data", map[string]string{"cnr": "DLCT01"}, usecase.ErrDataUnavailable, http.StatusUnprocessableEntity, "Real case data not available from eCourts servers"},
		{"internal failure", map[string]string{"cnr": "DLCT01"}, errors.New("database is locked"), http.StatusInternalServerError, "Search failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uc := &mockCaseUsecase{ReconcileFunc: func(context.Context, string) (*entity.Case, *entity.CaseInfo, error) {
				return nil, nil, tt.err
			}}

			w := doJSON(newCaseRouter(uc), http.MethodPost, "/api/search", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode[map[string]any](t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, w.Body.String(), "database is locked")
		})
	}
}

func TestSearch_NormalizesCNR(t *testing.T) {
	t.Parallel()

	var got string
	uc := &mockCaseUsecase{ReconcileFunc: func(_ context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error) {
		got = cnr
		return &entity.Case{ID: 3, CNR: cnr}, &entity.CaseInfo{CNR: cnr, IsRealData: true}, nil
	}}

	w := doJSON(newCaseRouter(uc), http.MethodPost, "/api/search", map[string]string{"cnr": " mp21010003442025 "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MP21010003442025", got)

	body := decode[dto.SearchEnvelope](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, uint(3), body.Data.CaseID)
	assert.Equal(t, "Real case data for MP21010003442025 retrieved from eCourts India Portal successfully", body.Data.Message)
}

func TestList(t *testing.T) {
	t.Parallel()

	hearing := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	uc := &mockCaseUsecase{ListRecentFunc: func(_ context.Context, limit int) ([]entity.Case, error) {
		assert.Equal(t, usecase.DefaultRecentLimit, limit)
		return []entity.Case{
			{ID: 2, CNR: "B", NextHearingDate: &hearing, UpdatedAt: time.Date(2025, 11, 2, 14, 5, 0, 0, time.UTC)},
			{ID: 1, CNR: "A"},
		}, nil
	}}

	w := doJSON(newCaseRouter(uc), http.MethodGet, "/api/cases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[dto.CasesEnvelope](t, w)
	require.Len(t, body.Cases, 2)
	assert.Equal(t, 2, body.Pagination.Total)
	assert.Equal(t, "17/11/2025", body.Cases[0].NextHearingDate)
	assert.Equal(t, "02/11/2025 14:05", body.Cases[0].UpdatedAt)
	assert.Empty(t, body.Cases[1].NextHearingDate)
}

func TestList_Error(t *testing.T) {
	t.Parallel()

	uc := &mockCaseUsecase{ListRecentFunc: func(context.Context, int) ([]entity.Case, error) {
		return nil, errors.New("boom")
	}}

	w := doJSON(newCaseRouter(uc), http.MethodGet, "/api/cases", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to load cases"}`, w.Body.String())
}

func TestServiceStatus(t *testing.T) {
	t.Parallel()

	w := doJSON(newCaseRouter(&mockCaseUsecase{available: true}), http.MethodGet, "/api/service-status", nil)
	assert.JSONEq(t, `{"success":true,"status":{"available":true,"status":"Online"}}`, w.Body.String())

	w = doJSON(newCaseRouter(&mockCaseUsecase{}), http.MethodGet, "/api/service-status", nil)
	assert.JSONEq(t, `{"success":true,"status":{"available":false,"status":"Offline"}}`, w.Body.String())
}

// TestSearch_EndToEnd runs a search through the real lookup, reconciler and sqlite store.
func TestSearch_EndToEnd(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entity.Case{}))

	lookup := ecourts.NewClient(ecourts.Config{Timeout: time.Second}, &http.Client{Timeout: time.Second})
	uc := usecase.NewReconcileUsecase(lookup, adapters.NewCaseGorm(db))
	r := newCaseRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/search", map[string]string{"cnr": "MP21010003392025"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[dto.SearchEnvelope](t, w)
	assert.True(t, body.Success)
	assert.True(t, body.Data.SavedToDB)
	assert.True(t, body.Data.CaseInfo.IsRealData)
	assert.Equal(t, "Ramprasad Lodhi vs Kiran Bai Lodhi, Phul Singh Lodhi, State Government Through Collector", body.Data.Case.CaseTitle)
	assert.Equal(t, "17/11/2025", body.Data.Case.NextHearingDate)

	w = doJSON(r, http.MethodGet, "/api/cases", nil)
	list := decode[dto.CasesEnvelope](t, w)
	require.Len(t, list.Cases, 1)
	assert.Equal(t, body.Data.CaseID, list.Cases[0].ID)
	assert.Equal(t, "17/11/2025", list.Cases[0].NextHearingDate)

	// no endpoints are configured, so any other CNR resolves to a placeholder
	w = doJSON(r, http.MethodPost, "/api/search", map[string]string{"cnr": "DLCT010012342024"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.Case{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
