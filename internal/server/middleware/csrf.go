package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/iudanet/pdfsync/pkg/api"
)

// CSRFMiddleware требует заголовок X-CSRFToken, равный token, для небезопасных методов.
// Пустой token отключает проверку.
func CSRFMiddleware(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || safeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(api.HeaderCSRFToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("CSRF token mismatch",
					"request_id", RequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"token_present", got != "",
				)
				http.Error(w, "CSRF verification failed", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
