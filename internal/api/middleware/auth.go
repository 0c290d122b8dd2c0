package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "неверный токен администратора"
)

// AdminAuth пропускает только запросы с заголовком Authorization: Bearer <token>
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := GetRequestID(r.Context())
			header := r.Header.Get("Authorization")
			provided, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || provided == "" {
				logger.Warn("%s %s - Missing admin token: request_id=%s", r.Method, r.URL.Path, requestID)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				logger.Warn("%s %s - Invalid admin token: request_id=%s", r.Method, r.URL.Path, requestID)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
