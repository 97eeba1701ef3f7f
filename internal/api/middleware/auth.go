package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Заголовок проставляется API gateway после проверки токена
const HeaderUserID = "X-User-ID"

type contextKey struct{}

var userIDKey contextKey

// Auth middleware проверяет наличие X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
