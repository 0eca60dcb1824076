package admin_auth

import (
	"context"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/auth"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}

type SessionManager interface {
	IssueCookie(w http.ResponseWriter, session auth.Session) error
	Verify(r *http.Request) (*auth.Session, error)
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
