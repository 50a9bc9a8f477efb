// Package health provides health check endpoints for the locale service.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shelfline/locale-service/internal/store"
)

// HealthCheck manages health check functionality.
type HealthCheck struct {
	settingsStore store.SettingsStore
	logger        *zap.Logger
	checkTimeout  time.Duration
}

// NewHealthCheck creates a new HealthCheck instance.
func NewHealthCheck(settingsStore store.SettingsStore, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		settingsStore: settingsStore,
		logger:        logger,
		checkTimeout:  5 * time.Second,
	}
}

// LivenessResponse represents the response for the liveness check.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse represents the response for the readiness check.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// LivenessHandler handles GET /health requests.
// Returns 200 OK if the process is running.
func (hc *HealthCheck) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status: "healthy",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ReadinessHandler handles GET /ready requests.
// Returns 200 OK if the settings store answers a ping.
func (hc *HealthCheck) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), hc.checkTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := hc.settingsStore.Ping(ctx); err != nil {
		hc.logger.Warn("readiness check failed", zap.Error(err))

		resp := ReadinessResponse{
			Status: "not_ready",
			Checks: map[string]string{
				"settings_store": "unhealthy",
			},
			Error: err.Error(),
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(resp)
		return
	}

	resp := ReadinessResponse{
		Status: "ready",
		Checks: map[string]string{
			"settings_store": "healthy",
		},
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
