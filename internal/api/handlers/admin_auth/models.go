package admin_auth

import "github.com/inovalogics-art/booking-service/internal/auth"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *auth.Session) *SessionResponse {
	return &SessionResponse{
		AdminID: s.AdminID,
		Email:   s.Email,
		Name:    s.Name,
	}
}
