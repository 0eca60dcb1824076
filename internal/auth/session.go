package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession возвращается, когда cookie сессии отсутствует
	ErrNoSession = errors.New("auth: session cookie missing")

	// ErrInvalidSession возвращается при невалидном или истекшем токене
	ErrInvalidSession = errors.New("auth: session invalid or expired")
)

// Session данные авторизованного администратора
type Session struct {
	AdminID string
	Email   string
	Name    string
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager выпускает и проверяет подписанные cookie админских сессий
type SessionManager struct {
	secret       []byte
	ttl          time.Duration
	cookieName   string
	cookieSecure bool
}

// NewSessionManager создает менеджер сессий
func NewSessionManager(secret string, ttl time.Duration, cookieName string, cookieSecure bool) *SessionManager {
	return &SessionManager{
		secret:       []byte(secret),
		ttl:          ttl,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// CookieName возвращает имя cookie сессии
func (m *SessionManager) CookieName() string {
	return m.cookieName
}

// IssueCookie выпускает подписанный токен и кладет его в cookie ответа
func (m *SessionManager) IssueCookie(w http.ResponseWriter, session Session) error {
	now := time.Now()

	claims := sessionClaims{
		Email: session.Email,
		Name:  session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.AdminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("auth: failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Verify проверяет cookie запроса и возвращает сессию
func (m *SessionManager) Verify(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	return &Session{
		AdminID: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// Clear сбрасывает cookie сессии
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
