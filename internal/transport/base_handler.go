package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/Bar-innutshell/Management-Karyawan/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// DataResponse is the envelope every success response uses: a human-readable
// message plus the payload, and for list endpoints the total row count.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   *int        `json:"total,omitempty"`
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData writes a success envelope without a total.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, message string, data interface{}) {
	h.WriteJSON(w, status, DataResponse{Message: message, Data: data})
}

// WriteList writes a success envelope for list endpoints.
func (h *BaseHandler) WriteList(w http.ResponseWriter, message string, data interface{}, total int) {
	h.WriteJSON(w, http.StatusOK, DataResponse{Message: message, Data: data, Total: &total})
}

// WriteError writes a plain error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, map[string]interface{}{
		"message": message,
	})
}

// HandleServiceError maps a service error onto the wire. AppErrors carry
// their own status code; dependency errors expose the blocking record
// counts as relatedData; anything else is an internal error with the
// underlying text attached.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	appErr, ok := internal.IsAppError(err)
	if !ok {
		appErr = internal.NewInternalError("internal server error", err)
	}

	body := map[string]interface{}{
		"message": appErr.Message,
	}
	if appErr.Details != nil {
		if appErr.Type == internal.ErrorTypeDependency {
			body["relatedData"] = appErr.Details
		} else {
			body["details"] = appErr.Details
		}
	}
	if appErr.Cause != nil {
		body["error"] = appErr.Cause.Error()
	}

	h.Logger.Error("service error",
		"status", appErr.StatusCode,
		"type", appErr.Type,
		"code", appErr.Code,
		"message", appErr.Message,
		"cause", appErr.Cause)

	h.WriteJSON(w, appErr.StatusCode, body)
}

// ExtractTokenFromHeader extracts a Bearer token from the Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
