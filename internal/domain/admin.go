package domain

import "time"

// AdminUser represents an administrator account
type AdminUser struct {
	ID           string
	Email        string
	Name         *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
