package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovalogics-art/booking-service/internal/auth"
)

func newSessionManager() *auth.SessionManager {
	return auth.NewSessionManager("test-secret", time.Hour, "admin_session", false)
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		require.True(t, ok, "session must be present behind the middleware")
		assert.Equal(t, "admin-1", session.AdminID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuth(t *testing.T) {
	sessions := newSessionManager()

	t.Run("Missing Cookie Returns 401 Envelope", func(t *testing.T) {
		handler := SessionAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached without a session")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "authentication required", body.Error)
	})

	t.Run("Garbage Cookie Returns 401", func(t *testing.T) {
		handler := SessionAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached with an invalid session")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: "not-a-token"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Foreign Secret Returns 401", func(t *testing.T) {
		other := auth.NewSessionManager("other-secret", time.Hour, "admin_session", false)
		issueRec := httptest.NewRecorder()
		require.NoError(t, other.IssueCookie(issueRec, auth.Session{AdminID: "admin-1", Email: "admin@example.com"}))

		handler := SessionAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached with a foreign token")
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		for _, c := range issueRec.Result().Cookies() {
			req.AddCookie(c)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Cookie Passes Through", func(t *testing.T) {
		issueRec := httptest.NewRecorder()
		require.NoError(t, sessions.IssueCookie(issueRec, auth.Session{
			AdminID: "admin-1",
			Email:   "admin@example.com",
			Name:    "Admin",
		}))

		cookies := issueRec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}

		rec := httptest.NewRecorder()
		SessionAuth(sessions)(protectedHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
