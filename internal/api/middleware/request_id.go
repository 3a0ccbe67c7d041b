package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	requestIDKey        contextKey = "requestID"
	requestIDHeaderName            = "X-Request-ID"
	maxRequestIDLength             = 128
)

// RequestIDFromContext returns the request id or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestID reuses the caller's X-Request-ID or assigns a fresh one, and
// echoes it back in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeaderName))
		if len(id) > maxRequestIDLength {
			id = id[:maxRequestIDLength]
		}
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeaderName, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}
