package middleware

import (
	"context"
	"net/http"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
)

type userIDCtxKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет идентификатор
// пользователя в контекст запроса. Аутентификацию выполняет Identity
// Provider на периметре; здесь только транспорт идентификатора.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса.
// Пустая строка означает, что запрос прошел без Auth middleware.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDCtxKey{}).(string); ok {
		return id
	}
	return ""
}
