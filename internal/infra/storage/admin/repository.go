package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/psqlbuilder"
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.Executor

// Repository репозиторий для работы с учетными записями администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает администратора по email (регистронезависимо)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "name", "password_hash", "created_at", "updated_at").
		From("admin_users").
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.AdminUser
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan admin user: %v", ErrScanRow, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
