package router

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tbeaudouin05/startupstack-checkout/api/apierrors"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// writeError converts err into the uniform error envelope. The classified
// message is always sent; the full error chain only when debug is set.
func writeError(w http.ResponseWriter, r *http.Request, err error, debug bool) {
	e := apierrors.Inspect(err)
	status := e.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "code", e.Code, "err", err)
	} else {
		slog.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "code", e.Code, "err", err)
	}
	resp := errorResponse{Success: false, Error: e.Error(), Code: e.Code}
	if debug {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
