package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// codeNames maps internal codes to the stable identifiers exposed in
// error responses.
var codeNames = map[ErrorCode]string{
	ErrCodeValidation:     "VALIDATION_FAILED",
	ErrCodeTenantNotFound: "TENANT_NOT_FOUND",
	ErrCodeTenantExists:   "TENANT_EXISTS",
	ErrCodeInvalidRequest: "INVALID_REQUEST",
	ErrCodeConfiguration:  "CONFIGURATION_ERROR",
	ErrCodePersistence:    "PERSISTENCE_FAILED",
	ErrCodeNotReady:       "NOT_READY",
	ErrCodeInternal:       "INTERNAL_ERROR",
}

// Name returns the stable identifier for an error code.
func (c ErrorCode) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ErrorResponse represents the standard error response format.
type ErrorResponse struct {
	Status    string                 `json:"status"`
	ErrorCode string                 `json:"error_code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// Handler provides error handling functionality for HTTP responses.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new error handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// HandleError processes an error and writes an appropriate HTTP response.
func (h *Handler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := r.Header.Get("X-Request-ID")

	var le *LocaleError
	if errors.As(err, &le) {
		h.writeResponse(w, le.HTTPStatus(), le.Code.Name(), le.Message, le.Details, requestID)
		return
	}

	h.writeResponse(w, http.StatusInternalServerError, ErrCodeInternal.Name(), err.Error(), nil, requestID)
}

// WriteErrorResponse writes a formatted error response to the HTTP response writer.
func (h *Handler) WriteErrorResponse(w http.ResponseWriter, statusCode int, code ErrorCode, message string, requestID string) {
	h.writeResponse(w, statusCode, code.Name(), message, nil, requestID)
}

// WriteValidationError writes a validation error response.
func (h *Handler) WriteValidationError(w http.ResponseWriter, message string, requestID string) {
	h.writeResponse(w, http.StatusBadRequest, ErrCodeInvalidRequest.Name(), message, nil, requestID)
}

// WriteRateLimitedError writes a rate limit exceeded response.
func (h *Handler) WriteRateLimitedError(w http.ResponseWriter, requestID string) {
	h.writeResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded", nil, requestID)
}

func (h *Handler) writeResponse(w http.ResponseWriter, statusCode int, codeName, message string, details map[string]interface{}, requestID string) {
	h.logger.Warn("HTTP error response",
		zap.Int("status_code", statusCode),
		zap.String("error_code", codeName),
		zap.String("message", message),
		zap.String("request_id", requestID),
	)

	resp := ErrorResponse{
		Status:    "error",
		ErrorCode: codeName,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
