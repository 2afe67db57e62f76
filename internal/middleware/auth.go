package middleware

import (
	"net/http"
	"strings"

	"github.com/josh-kwaku/scheme-payments/internal/auth"
	"github.com/josh-kwaku/scheme-payments/internal/handler"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
)

func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handler.RespondAppError(w, handler.ErrMissingToken, nil)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			ctx := auth.ContextWithClaims(r.Context(), claims)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("client_id", claims.ClientID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireScope must run after Auth.
func RequireScope(scope string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			handler.RespondAppError(w, handler.ErrMissingToken, nil)
			return
		}
		if !claims.HasScope(scope) {
			handler.RespondAppError(w, handler.ErrForbidden, nil)
			return
		}
		next(w, r)
	})
}
