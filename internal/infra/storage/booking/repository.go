package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/psqlbuilder"
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"category_id",
	"name",
	"email",
	"phone",
	"company",
	"scheduled_date",
	"scheduled_time",
	"timezone",
	"meeting_type",
	"message",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Занятость слота гарантирует частичный уникальный индекс bookings_active_slot_key:
// конкурентная вставка на тот же (дата, время) получит 23505, который маппится
// в ErrSlotTaken. Если в контексте есть активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, bk *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if bk.ID == "" {
		bk.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"category_id",
			"name",
			"email",
			"phone",
			"company",
			"scheduled_date",
			"scheduled_time",
			"timezone",
			"meeting_type",
			"message",
			"status",
			"notes",
		).
		Values(
			bk.ID,
			bk.CategoryID,
			bk.Name,
			bk.Email,
			bk.Phone,
			bk.Company,
			bk.ScheduledDate,
			bk.ScheduledTime,
			bk.Timezone,
			bk.MeetingType,
			bk.Message,
			bk.Status,
			bk.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	return bk, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	bk, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return bk, nil
}

// List получает список бронирований с фильтрацией.
// Поддерживает фильтры по статусу, дате и подстроке email (регистронезависимо).
// Сортировка: ближайшие даты первыми.
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("scheduled_date ASC, scheduled_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"scheduled_date": *filter.Date})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"email": "%" + *filter.Email + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update частично обновляет бронирование: nil-поля не трогаются.
// Перенос на занятый слот ловится тем же уникальным индексом, что и Create.
func (r *Repository) Update(ctx context.Context, id string, upd domain.BookingUpdate) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(bookingColumns))

	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}
	if upd.ScheduledDate != nil {
		updateBuilder = updateBuilder.Set("scheduled_date", *upd.ScheduledDate)
	}
	if upd.ScheduledTime != nil {
		updateBuilder = updateBuilder.Set("scheduled_time", *upd.ScheduledTime)
	}
	if upd.MeetingType != nil {
		updateBuilder = updateBuilder.Set("meeting_type", *upd.MeetingType)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	bk, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Update - scan booking: %v", ErrScanRow, err)
	}

	return bk, nil
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus возвращает счетчики бронирований, сгруппированные по статусу
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// ExistsActiveAt проверяет, занят ли слот активным (не отмененным) бронированием.
// Опционально исключает бронирование по ID — нужно при переносе, чтобы
// бронирование не конфликтовало само с собой.
func (r *Repository) ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString, excludeID *string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"scheduled_date": date, "scheduled_time": slot}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var bk domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&bk.ID,
		&bk.CategoryID,
		&bk.Name,
		&bk.Email,
		&bk.Phone,
		&bk.Company,
		&bk.ScheduledDate,
		&bk.ScheduledTime,
		&bk.Timezone,
		&bk.MeetingType,
		&bk.Message,
		&bk.Status,
		&bk.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	return &bk, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		bk, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, bk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return false
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
