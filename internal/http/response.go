package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// Legacy not-found messages. The wording is part of the API contract.
const (
	msgNoAccountData = "Opps.. No account data found"
	msgNoLogs        = "Opps.. No logs found"
	msgNoGoals       = "No goals found"
)

// notFoundBody is the legacy not-found envelope. Clients branch on the
// status_code field inside the body, so it is kept alongside the real HTTP
// status.
type notFoundBody struct {
	StatusCode int    `json:"status_code"`
	Data       string `json:"data"`
}

type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeNotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, notFoundBody{StatusCode: http.StatusNotFound, Data: msg})
}

// writeError maps service errors onto the wire: validation and format
// errors are the client's fault, a missing entry is the legacy not-found
// shape, everything else is a 500 with the detail kept out of the body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve core.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: ve.Message})
		return
	}
	var fe *core.FormatError
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: fe.Error()})
		return
	}
	if errors.Is(err, ledger.ErrEntryNotFound) {
		writeNotFound(w, msgNoLogs)
		return
	}
	slog.ErrorContext(r.Context(), "Request failed",
		"error", err, "method", r.Method, "url", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, detailBody{Detail: "internal server error"})
}
