package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/metrics"
	"github.com/shelfline/locale-service/internal/model"
	"github.com/shelfline/locale-service/internal/service"
	"github.com/shelfline/locale-service/internal/store"
	"github.com/shelfline/locale-service/internal/validation"
)

var testMetrics = metrics.NewMetrics()

// testRouter wires the handlers under test onto the production routes.
func testRouter(t *testing.T) (*mux.Router, *store.MemorySettingsStore) {
	t.Helper()

	logger := zap.NewNop()
	mem := store.NewMemorySettingsStore(logger)
	cache := store.NewSettingsCache(time.Minute, 100)
	settings := service.NewSettingsService(mem, cache, validation.NewValidator(), testMetrics, logger)
	errorHandler := apperrors.NewHandler(logger)

	settingsHandler := NewSettingsHandler(settings, errorHandler, logger)
	formatHandler := NewFormatHandler(settings, errorHandler, testMetrics, logger)

	router := mux.NewRouter()
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/tenants", settingsHandler.ProvisionTenant).Methods(http.MethodPost)
	v1.HandleFunc("/tenants/{tenant_id}/settings", settingsHandler.GetSettings).Methods(http.MethodGet)
	v1.HandleFunc("/tenants/{tenant_id}/settings", settingsHandler.UpdateSettings).Methods(http.MethodPut)
	v1.HandleFunc("/presets/{country}", settingsHandler.GetPreset).Methods(http.MethodGet)
	v1.HandleFunc("/tenants/{tenant_id}/format", formatHandler.Format).Methods(http.MethodPost)

	return router, mem
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	router, mem := testRouter(t)
	require.NoError(t, mem.Save(context.Background(), model.DefaultSettings("tenant-1")))

	rec := doJSON(t, router, http.MethodGet, "/v1/tenants/tenant-1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status   string          `json:"status"`
		Settings SettingsPayload `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "MY", resp.Settings.Country)
	assert.Equal(t, "MYR", resp.Settings.Currency)
	assert.Equal(t, "DD/MM/YYYY", resp.Settings.DateFormat)
}

func TestSettingsHandler_GetSettings_UnknownTenant(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tenants/ghost/settings", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TENANT_NOT_FOUND", decodeError(t, rec).ErrorCode)
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	router, mem := testRouter(t)
	require.NoError(t, mem.Save(context.Background(), model.DefaultSettings("tenant-1")))

	body := SettingsPayload{
		Country:          "US",
		Currency:         "USD",
		Timezone:         "America/New_York",
		DateFormat:       "MM/DD/YYYY",
		TimeFormat:       "12-hour",
		DecimalPrecision: "0.01",
	}

	rec := doJSON(t, router, http.MethodPut, "/v1/tenants/tenant-1/settings", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp UpdateSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.CountryChanged)
	assert.Equal(t, "USD", resp.Settings.Currency)
	assert.Equal(t, int64(2), resp.Settings.Version)

	persisted, err := mem.Load(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "US", persisted.Country)
}

func TestSettingsHandler_UpdateSettings_ValidationFailure(t *testing.T) {
	router, mem := testRouter(t)
	require.NoError(t, mem.Save(context.Background(), model.DefaultSettings("tenant-1")))

	body := SettingsPayload{
		Country:          "US",
		Currency:         "NOPE",
		Timezone:         "America/New_York",
		DateFormat:       "MM/DD/YYYY",
		TimeFormat:       "12-hour",
		DecimalPrecision: "0.01",
	}

	rec := doJSON(t, router, http.MethodPut, "/v1/tenants/tenant-1/settings", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", resp.ErrorCode)
	assert.Contains(t, resp.Details, "currency")
}

func TestSettingsHandler_UpdateSettings_MalformedBody(t *testing.T) {
	router, mem := testRouter(t)
	require.NoError(t, mem.Save(context.Background(), model.DefaultSettings("tenant-1")))

	req := httptest.NewRequest(http.MethodPut, "/v1/tenants/tenant-1/settings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, rec).ErrorCode)
}

func TestSettingsHandler_ProvisionTenant(t *testing.T) {
	router, mem := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", ProvisionRequest{
		TenantID:    "tenant-1",
		CompanyName: "Acme Traders",
		Country:     "SG",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Status   string          `json:"status"`
		Settings SettingsPayload `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SGD", resp.Settings.Currency)
	assert.Equal(t, "Asia/Singapore", resp.Settings.Timezone)
	assert.Equal(t, "Acme Traders", resp.Settings.CompanyName)

	_, err := mem.Load(context.Background(), "tenant-1")
	assert.NoError(t, err)
}

func TestSettingsHandler_ProvisionTenant_Duplicate(t *testing.T) {
	router, mem := testRouter(t)
	require.NoError(t, mem.Save(context.Background(), model.DefaultSettings("tenant-1")))

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", ProvisionRequest{
		TenantID: "tenant-1",
		Country:  "US",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TENANT_EXISTS", decodeError(t, rec).ErrorCode)
}

func TestSettingsHandler_ProvisionTenant_MissingTenantID(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/tenants", ProvisionRequest{Country: "US"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsHandler_GetPreset(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/presets/JP", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Settings SettingsPayload `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "JPY", resp.Settings.Currency)
	assert.Equal(t, "1", resp.Settings.DecimalPrecision)
	assert.Equal(t, "24-hour", resp.Settings.TimeFormat)
}
