package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/inovalogics-art/booking-service/internal/domain"
	adminRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/admin"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Не различаем "нет такого пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo AdminRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminRepository, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login проверяет учетные данные и возвращает сессию администратора
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown admin email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		AdminID: user.ID,
		Email:   user.Email,
	}
	if user.Name != nil {
		session.Name = *user.Name
	}

	s.logger.Info("Login: admin id=%s logged in", user.ID)
	return session, nil
}
