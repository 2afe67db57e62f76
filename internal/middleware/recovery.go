package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/josh-kwaku/scheme-payments/internal/handler"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logging.FromContext(r.Context()).Error("panic recovered",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				handler.RespondAppError(w, handler.ErrInternalError, nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
