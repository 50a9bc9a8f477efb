package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/locale"
	"github.com/shelfline/locale-service/internal/metrics"
	"github.com/shelfline/locale-service/internal/service"
)

// Format kinds accepted by the batch endpoint.
const (
	KindCurrency     = "currency"
	KindNumber       = "number"
	KindDate         = "date"
	KindTime         = "time"
	KindDateTime     = "datetime"
	KindShortDate    = "short_date"
	KindRelativeDate = "relative_date"
)

// FormatItem is one value to render. Numeric kinds read Value (and the
// optional Currency override); temporal kinds read Instant, an RFC 3339
// UTC timestamp.
type FormatItem struct {
	Kind     string     `json:"kind"`
	Value    *float64   `json:"value,omitempty"`
	Currency string     `json:"currency,omitempty"`
	Instant  *time.Time `json:"instant,omitempty"`
}

// FormatRequest is the body of POST /v1/tenants/{tenant_id}/format.
type FormatRequest struct {
	Items []FormatItem `json:"items"`
}

// FormatResponse carries one formatted string per requested item, in order.
type FormatResponse struct {
	Status  string   `json:"status"`
	Results []string `json:"results"`
}

// FormatHandler serves the batch formatting endpoint every page renders
// through.
type FormatHandler struct {
	settings     *service.SettingsService
	errorHandler *apperrors.Handler
	metrics      *metrics.Metrics
	logger       *zap.Logger

	// now is injected for tests of relative dates
	now func() time.Time
}

// NewFormatHandler creates a new format handler
func NewFormatHandler(settings *service.SettingsService, errorHandler *apperrors.Handler, m *metrics.Metrics, logger *zap.Logger) *FormatHandler {
	return &FormatHandler{
		settings:     settings,
		errorHandler: errorHandler,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Format handles POST /v1/tenants/{tenant_id}/format requests. The batch
// either renders completely or fails as a whole; a configuration error in
// the stored settings must surface, never a blank string.
func (h *FormatHandler) Format(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenant_id"]
	requestID := r.Header.Get("X-Request-ID")

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.WriteValidationError(w, "invalid request body: "+err.Error(), requestID)
		return
	}
	if len(req.Items) == 0 {
		h.errorHandler.WriteValidationError(w, "items is required", requestID)
		return
	}

	fc, err := h.settings.Context(r.Context(), tenantID)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	results := make([]string, len(req.Items))
	for i, item := range req.Items {
		formatted, err := h.formatOne(fc, item)
		if err != nil {
			h.metrics.FormatErrors.WithLabelValues(item.Kind).Inc()
			h.errorHandler.HandleError(w, r, err)
			return
		}
		h.metrics.FormatsTotal.WithLabelValues(item.Kind).Inc()
		results[i] = formatted
	}

	writeJSON(w, http.StatusOK, FormatResponse{
		Status:  "ok",
		Results: results,
	})
}

func (h *FormatHandler) formatOne(fc *locale.FormattingContext, item FormatItem) (string, error) {
	switch item.Kind {
	case KindCurrency:
		if item.Value == nil {
			return "", apperrors.InvalidRequest("currency item requires a value")
		}
		if item.Currency != "" {
			return fc.FormatCurrencyIn(*item.Value, item.Currency)
		}
		return fc.FormatCurrency(*item.Value)

	case KindNumber:
		if item.Value == nil {
			return "", apperrors.InvalidRequest("number item requires a value")
		}
		return fc.FormatNumber(*item.Value)

	case KindDate:
		if item.Instant == nil {
			return "", apperrors.InvalidRequest("date item requires an instant")
		}
		return fc.FormatDate(*item.Instant)

	case KindTime:
		if item.Instant == nil {
			return "", apperrors.InvalidRequest("time item requires an instant")
		}
		return fc.FormatTime(*item.Instant)

	case KindDateTime:
		if item.Instant == nil {
			return "", apperrors.InvalidRequest("datetime item requires an instant")
		}
		return fc.FormatDateTime(*item.Instant)

	case KindShortDate:
		if item.Instant == nil {
			return "", apperrors.InvalidRequest("short_date item requires an instant")
		}
		return fc.FormatShortDate(*item.Instant)

	case KindRelativeDate:
		if item.Instant == nil {
			return "", apperrors.InvalidRequest("relative_date item requires an instant")
		}
		return fc.FormatRelativeDate(*item.Instant, h.now())

	default:
		return "", apperrors.InvalidRequest("unknown format kind: " + item.Kind)
	}
}
