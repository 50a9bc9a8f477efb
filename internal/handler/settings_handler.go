// Package handler provides HTTP request handlers for the locale service.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
	"github.com/shelfline/locale-service/internal/service"
)

// SettingsPayload is the wire representation of a tenant settings record.
type SettingsPayload struct {
	TenantID         string    `json:"tenant_id"`
	CompanyName      string    `json:"company_name,omitempty"`
	Country          string    `json:"country"`
	Currency         string    `json:"currency"`
	Timezone         string    `json:"timezone"`
	DateFormat       string    `json:"date_format"`
	TimeFormat       string    `json:"time_format"`
	DecimalPrecision string    `json:"decimal_precision"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
	Version          int64     `json:"version,omitempty"`
}

func toPayload(s *model.TenantSettings) SettingsPayload {
	return SettingsPayload{
		TenantID:         s.TenantID,
		CompanyName:      s.CompanyName,
		Country:          s.Country,
		Currency:         s.Currency,
		Timezone:         s.Timezone,
		DateFormat:       string(s.DateFormat),
		TimeFormat:       string(s.TimeFormat),
		DecimalPrecision: string(s.DecimalPrecision),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		Version:          s.Version,
	}
}

func (p SettingsPayload) toModel() *model.TenantSettings {
	return &model.TenantSettings{
		TenantID:         p.TenantID,
		CompanyName:      p.CompanyName,
		Country:          p.Country,
		Currency:         p.Currency,
		Timezone:         p.Timezone,
		DateFormat:       model.DateFormat(p.DateFormat),
		TimeFormat:       model.TimeFormat(p.TimeFormat),
		DecimalPrecision: model.DecimalPrecision(p.DecimalPrecision),
	}
}

// UpdateSettingsResponse is returned from PUT settings requests.
type UpdateSettingsResponse struct {
	Status         string          `json:"status"`
	Settings       SettingsPayload `json:"settings"`
	CountryChanged bool            `json:"country_changed"`
}

// ProvisionRequest is the body of POST /v1/tenants.
type ProvisionRequest struct {
	TenantID    string `json:"tenant_id"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
}

// SettingsHandler serves the tenant settings endpoints.
type SettingsHandler struct {
	settings     *service.SettingsService
	errorHandler *apperrors.Handler
	logger       *zap.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService, errorHandler *apperrors.Handler, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings:     settings,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetSettings handles GET /v1/tenants/{tenant_id}/settings requests.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenant_id"]

	settings, err := h.settings.GetSettings(r.Context(), tenantID)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"settings": toPayload(settings),
	})
}

// UpdateSettings handles PUT /v1/tenants/{tenant_id}/settings requests. The
// body is a full settings replacement; partial patches are rejected by
// validation of the resulting candidate.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenant_id"]
	requestID := r.Header.Get("X-Request-ID")

	var payload SettingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.errorHandler.WriteValidationError(w, "invalid request body: "+err.Error(), requestID)
		return
	}

	result, err := h.settings.ApplySettings(r.Context(), tenantID, payload.toModel())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateSettingsResponse{
		Status:         "ok",
		Settings:       toPayload(result.Settings),
		CountryChanged: result.CountryChanged,
	})
}

// ProvisionTenant handles POST /v1/tenants requests.
func (h *SettingsHandler) ProvisionTenant(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")

	var req ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.WriteValidationError(w, "invalid request body: "+err.Error(), requestID)
		return
	}
	if req.TenantID == "" {
		h.errorHandler.WriteValidationError(w, "tenant_id is required", requestID)
		return
	}

	settings, err := h.settings.ProvisionTenant(r.Context(), req.TenantID, req.CompanyName, req.Country)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "ok",
		"settings": toPayload(settings),
	})
}

// GetPreset handles GET /v1/presets/{country} requests. It returns the
// defaults the settings form pre-fills for the country, including the
// recommended decimal precision for the preset currency.
func (h *SettingsHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	country := mux.Vars(r)["country"]

	defaults := h.settings.RecommendedDefaults(country)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"settings": toPayload(defaults),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
