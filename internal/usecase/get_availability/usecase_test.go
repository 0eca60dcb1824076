package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovalogics-art/booking-service/internal/domain"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

type fakeScheduleRepository struct {
	rules   []*domain.SlotRule
	blocked *domain.BlockedDate
}

func (f *fakeScheduleRepository) ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.SlotRule, error) {
	return f.rules, nil
}

func (f *fakeScheduleRepository) GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error) {
	if f.blocked == nil {
		return nil, scheduleRepo.ErrBlockedDateNotFound
	}
	return f.blocked, nil
}

type fakeBookingRepository struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(schedule *fakeScheduleRepository, bookings *fakeBookingRepository, now time.Time) *UseCase {
	uc := NewUseCase(schedule, bookings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestUseCase_Execute(t *testing.T) {
	// 2026-01-15 — четверг
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	morningRule := &domain.SlotRule{
		ID:        "rule-1",
		DayOfWeek: 4,
		StartTime: "09:00:00",
		EndTime:   "12:00:00",
		IsActive:  true,
	}

	t.Run("Validation Errors", func(t *testing.T) {
		uc := newTestUseCase(&fakeScheduleRepository{}, &fakeBookingRepository{}, now)

		_, err := uc.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidDate)

		_, err = uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Past Date Returns Blocked Without Error", func(t *testing.T) {
		uc := newTestUseCase(&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}}, &fakeBookingRepository{}, now)

		resp, err := uc.Execute(context.Background(), &Request{
			Date: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.Nil(t, resp.BlockedReason)
		assert.Equal(t, "Wednesday", resp.DayName)
		assert.Empty(t, resp.AvailableTimes)
		assert.NotNil(t, resp.AvailableTimes, "must serialize as [] rather than null")
	})

	t.Run("Blocked Date With Reason", func(t *testing.T) {
		reason := "Public holiday"
		uc := newTestUseCase(&fakeScheduleRepository{
			rules:   []*domain.SlotRule{morningRule},
			blocked: &domain.BlockedDate{ID: "bd-1", Date: today, Reason: &reason},
		}, &fakeBookingRepository{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		require.NotNil(t, resp.BlockedReason)
		assert.Equal(t, reason, *resp.BlockedReason)
		assert.Empty(t, resp.AvailableTimes)
	})

	t.Run("No Rules For Day", func(t *testing.T) {
		uc := newTestUseCase(&fakeScheduleRepository{}, &fakeBookingRepository{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.False(t, resp.Blocked)
		assert.Equal(t, "Thursday", resp.DayName)
		assert.Empty(t, resp.AvailableTimes)
		assert.NotNil(t, resp.AvailableTimes)
	})

	t.Run("Full Grid Without Bookings", func(t *testing.T) {
		uc := newTestUseCase(&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}}, &fakeBookingRepository{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		// Времена отдаются в канонической форме HH:MM:SS
		assert.Equal(t,
			[]string{"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00", "11:30:00"},
			slotStrings(resp.AvailableTimes),
		)
	})

	t.Run("Overlapping Rules Deduplicate", func(t *testing.T) {
		overlapping := &domain.SlotRule{
			ID:        "rule-2",
			DayOfWeek: 4,
			StartTime: "11:00:00",
			EndTime:   "13:00:00",
			IsActive:  true,
		}
		uc := newTestUseCase(&fakeScheduleRepository{
			rules: []*domain.SlotRule{morningRule, overlapping},
		}, &fakeBookingRepository{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00", "11:30:00", "12:00:00", "12:30:00"},
			slotStrings(resp.AvailableTimes),
		)
	})

	t.Run("Booked Times Removed", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}},
			&fakeBookingRepository{bookings: []*domain.Booking{
				{ID: "b-1", ScheduledDate: today, ScheduledTime: "10:00:00", Status: domain.StatusConfirmed},
			}},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00:00", "09:30:00", "10:30:00", "11:00:00", "11:30:00"},
			slotStrings(resp.AvailableTimes),
		)
	})

	t.Run("Cancelled Booking Frees The Slot", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}},
			&fakeBookingRepository{bookings: []*domain.Booking{
				{ID: "b-1", ScheduledDate: today, ScheduledTime: "10:00:00", Status: domain.StatusCancelled},
			}},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.Contains(t, slotStrings(resp.AvailableTimes), "10:00:00")
	})

	t.Run("Buffer Removes Adjacent Slots", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}},
			&fakeBookingRepository{bookings: []*domain.Booking{
				{ID: "b-1", ScheduledDate: today, ScheduledTime: "10:00:00", Status: domain.StatusPending},
			}},
			now,
		)

		// Порог 30 + 15 = 45: соседние 09:30 и 10:30 отстоят на 30 минут и выпадают
		resp, err := uc.Execute(context.Background(), &Request{Date: today, BufferMinutes: 15})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00:00", "11:00:00", "11:30:00"},
			slotStrings(resp.AvailableTimes),
		)
	})

	t.Run("Negative Buffer Treated As Zero", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepository{rules: []*domain.SlotRule{morningRule}},
			&fakeBookingRepository{bookings: []*domain.Booking{
				{ID: "b-1", ScheduledDate: today, ScheduledTime: "10:00:00", Status: domain.StatusPending},
			}},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{Date: today, BufferMinutes: -10})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00:00", "09:30:00", "10:30:00", "11:00:00", "11:30:00"},
			slotStrings(resp.AvailableTimes),
		)
	})
}

func TestGenerateSlotTimes(t *testing.T) {
	t.Run("End Exclusive", func(t *testing.T) {
		rule := &domain.SlotRule{StartTime: "09:00:00", EndTime: "10:00:00"}
		assert.Equal(t, []string{"09:00:00", "09:30:00"}, slotStrings(generateSlotTimes(rule)))
	})

	t.Run("Unaligned End Keeps Last Start", func(t *testing.T) {
		// Кандидат - любое время начала строго раньше конца окна
		rule := &domain.SlotRule{StartTime: "09:00:00", EndTime: "12:15:00"}
		slots := slotStrings(generateSlotTimes(rule))
		assert.Contains(t, slots, "12:00:00")
		assert.NotContains(t, slots, "12:30:00")
	})

	t.Run("Window Shorter Than Interval", func(t *testing.T) {
		rule := &domain.SlotRule{StartTime: "09:00:00", EndTime: "09:15:00"}
		assert.Equal(t, []string{"09:00:00"}, slotStrings(generateSlotTimes(rule)))
	})
}

func TestSubtractBookedTimes(t *testing.T) {
	booked := []*domain.Booking{
		{ID: "b-1", ScheduledTime: "10:00:00", Status: domain.StatusConfirmed},
	}

	t.Run("Zero Buffer Is Exact Subtraction", func(t *testing.T) {
		// Невыровненный кандидат 09:45 из пересекающегося правила
		// остается: без паузы выпадает только точное совпадение
		slots := []types.TimeString{"09:45:00", "10:00:00", "10:15:00"}
		assert.Equal(t,
			[]string{"09:45:00", "10:15:00"},
			slotStrings(subtractBookedTimes(slots, booked, 0)),
		)
	})

	t.Run("Buffer Widens The Window", func(t *testing.T) {
		// Порог 45 минут: 09:45 и 10:30 выпадают, 09:15 отстоит ровно
		// на 45 минут и остается
		slots := []types.TimeString{"09:15:00", "09:45:00", "10:30:00", "11:00:00"}
		assert.Equal(t,
			[]string{"09:15:00", "11:00:00"},
			slotStrings(subtractBookedTimes(slots, booked, 15)),
		)
	})
}
