package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inovalogics-art/booking-service/internal/domain"
	adminRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/admin"
)

type fakeAdminRepository struct {
	users map[string]*domain.AdminUser
}

func (f *fakeAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	name := "Admin"
	repo := &fakeAdminRepository{users: map[string]*domain.AdminUser{
		"admin@example.com": {
			ID:           "admin-1",
			Email:        "admin@example.com",
			Name:         &name,
			PasswordHash: string(hash),
		},
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("Success", func(t *testing.T) {
		session, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", session.AdminID)
		assert.Equal(t, "admin@example.com", session.Email)
		assert.Equal(t, "Admin", session.Name)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email Indistinguishable From Wrong Password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
