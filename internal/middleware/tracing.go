package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader   = "X-Request-ID"
	maxTraceIDBytes = 128
)

type traceIDKey struct{}

// Tracing propagates X-Request-ID, minting a UUID when the caller sent none
// or sent one longer than maxTraceIDBytes.
func Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDBytes {
			traceID = uuid.New().String()
		}

		w.Header().Set(traceIDHeader, traceID)
		ctx := context.WithValue(r.Context(), traceIDKey{}, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
