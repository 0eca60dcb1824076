package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusNoShow, StatusConfirmed, false},
	}

	for _, tc := range cases {
		b := &Booking{Status: tc.from}
		assert.Equal(t, tc.allowed, b.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	// Повторная запись того же статуса всегда проходит
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		b := &Booking{Status: status}
		assert.True(t, b.CanTransitionTo(status), "%s -> %s", status, status)
	}
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow} {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should occupy the slot", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
}

func TestIsDatePast(t *testing.T) {
	now := time.Date(2026, 1, 15, 13, 45, 0, 0, time.UTC)

	assert.True(t, IsDatePast(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошедшим независимо от времени суток
	assert.False(t, IsDatePast(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDatePast(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestDayName(t *testing.T) {
	// 2026-01-15 — четверг
	assert.Equal(t, "Thursday", DayName(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, DayOfWeek(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsWeekend(time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)))
}

func TestBookingUpdate(t *testing.T) {
	assert.True(t, (&BookingUpdate{}).IsEmpty())

	status := StatusConfirmed
	assert.False(t, (&BookingUpdate{Status: &status}).IsEmpty())

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	upd := &BookingUpdate{ScheduledDate: &date}
	assert.False(t, upd.IsReschedule(), "date without time is not a reschedule")
}
