package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/middleware"
	"github.com/daybook/daybook-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError maps a service error to the {code, message} body. Anything
// without a registered code surfaces as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apperr.Error
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, model.ErrorResponse{Code: apiErr.Status, Message: apiErr.Message})
		return
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, apperr.ErrInternal.Status, model.ErrorResponse{
		Code:    apperr.ErrInternal.Status,
		Message: apperr.ErrInternal.Message,
	})
}

// decodeBody reads a capped JSON request body into v, writing the error
// response itself when the body is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, apperr.ErrRequestBody)
		return false
	}
	return true
}

// accountID pulls the verified account identifier off the request context.
// The access gate puts it there, so a miss means the route was wired
// without the gate.
func accountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, apperr.ErrTokenInvalid)
	}
	return id, ok
}
