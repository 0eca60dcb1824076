package middleware

import (
	"context"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/auth"
)

const msgAuthRequired = "authentication required"

type sessionKey struct{}

// SessionVerifier проверяет cookie запроса
type SessionVerifier interface {
	Verify(r *http.Request) (*auth.Session, error)
}

// SessionAuth middleware для админских ручек: без валидной cookie — 401
func SessionAuth(sessions SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Verify(r)
			if err != nil {
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext достает сессию администратора из контекста запроса
func SessionFromContext(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*auth.Session)
	return session, ok
}
