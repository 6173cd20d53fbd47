package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/crypto"
	"github.com/daybook/daybook-go/internal/model"
)

type contextKey string

const accountIDKey contextKey = "accountID"

// JWTAuth returns the access gate: it resolves the Bearer token from the
// Authorization header to a verified account identifier on the request
// context, or short-circuits with the fixed 401 body. Absence and
// invalidity are indistinguishable to the caller.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				writeGateError(w, apperr.ErrTokenInvalid)
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeGateError(w, apperr.ErrTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromContext extracts the authenticated account ID placed on the
// request context by JWTAuth.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

func writeGateError(w http.ResponseWriter, err *apperr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Code: err.Status, Message: err.Message})
}
