package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/psqlbuilder"
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
)

// Repository репозиторий для работы с расписанием: правилами слотов
// по дням недели и блокировками конкретных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateSlotRule создает новое правило расписания
func (r *Repository) CreateSlotRule(ctx context.Context, rule *domain.SlotRule) (*domain.SlotRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("available_slots").
		Columns("id", "day_of_week", "start_time", "end_time", "is_active").
		Values(rule.ID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.IsActive).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlotRule - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateSlotRule - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time

	return rule, nil
}

// GetSlotRuleByID получает правило расписания по ID
func (r *Repository) GetSlotRuleByID(ctx context.Context, id string) (*domain.SlotRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "start_time", "end_time", "is_active", "created_at").
		From("available_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotRuleByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanSlotRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotRuleByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListSlotRules получает все правила расписания, включая неактивные.
// Сортировка: по дню недели, затем по времени начала.
func (r *Repository) ListSlotRules(ctx context.Context) ([]*domain.SlotRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "start_time", "end_time", "is_active", "created_at").
		From("available_slots").
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlotRules(rows)
}

// ListActiveByDay получает активные правила для конкретного дня недели (0 = воскресенье)
func (r *Repository) ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.SlotRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "start_time", "end_time", "is_active", "created_at").
		From("available_slots").
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlotRules(rows)
}

// UpdateSlotRule частично обновляет правило расписания: nil-поля не трогаются
func (r *Repository) UpdateSlotRule(ctx context.Context, id string, upd domain.SlotRuleUpdate) (*domain.SlotRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("available_slots").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, day_of_week, start_time, end_time, is_active, created_at")

	if upd.DayOfWeek != nil {
		updateBuilder = updateBuilder.Set("day_of_week", *upd.DayOfWeek)
	}
	if upd.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *upd.EndTime)
	}
	if upd.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *upd.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSlotRule - build update query: %v", ErrBuildQuery, err)
	}

	rule, err := scanSlotRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSlotRule - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// CreateBlockedDate блокирует дату для бронирований
func (r *Repository) CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if blocked.ID == "" {
		blocked.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("id", "date", "reason").
		Values(blocked.ID, blocked.Date, blocked.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// ListBlockedDates получает все блокировки, ближайшие даты первыми
func (r *Repository) ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "reason", "created_at").
		From("blocked_dates").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blockedDates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var bd domain.BlockedDate
		var createdAt sql.NullTime
		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		bd.CreatedAt = createdAt.Time
		blockedDates = append(blockedDates, &bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blockedDates, nil
}

// GetBlockedDateByDate получает блокировку по календарной дате
func (r *Repository) GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "reason", "created_at").
		From("blocked_dates").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDateByDate - build select query: %v", ErrBuildQuery, err)
	}

	var bd domain.BlockedDate
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bd.ID, &bd.Date, &bd.Reason, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDateByDate - scan row: %v", ErrScanRow, err)
	}

	bd.CreatedAt = createdAt.Time

	return &bd, nil
}

// DeleteBlockedDate снимает блокировку даты (физическое удаление записи)
func (r *Repository) DeleteBlockedDate(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlotRule сканирует одну строку в правило расписания
func scanSlotRule(row rowScanner) (*domain.SlotRule, error) {
	var rule domain.SlotRule
	var createdAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time

	return &rule, nil
}

// scanSlotRules сканирует результаты запроса в слайс правил
func scanSlotRules(rows *sql.Rows) ([]*domain.SlotRule, error) {
	rules := make([]*domain.SlotRule, 0)

	for rows.Next() {
		rule, err := scanSlotRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
