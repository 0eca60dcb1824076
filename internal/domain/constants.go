package domain

import "time"

// Default booking settings
const (
	DefaultTimezone     = "America/New_York"
	DefaultMeetingType  = MeetingVideo
	SlotIntervalMinutes = 30 // Шаг сетки слотов, фиксированный

	DefaultCancellationNote = "Cancelled by user"
)

// Business validation constants
const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MaxCompanyLength = 100
	MaxMessageLength = 1000
	MaxNotesLength   = 500
	MaxReasonLength  = 255
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// DayNames weekday names indexed by day-of-week (0 = Sunday)
var DayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// DayOfWeek returns the weekday index of a date (0 = Sunday .. 6 = Saturday)
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// DayName returns the weekday name of a date
func DayName(date time.Time) string {
	return DayNames[DayOfWeek(date)]
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsDatePast проверяет, что дата раньше сегодняшнего дня.
// Сравнение идет с точностью до календарного дня по локальным часам процесса.
func IsDatePast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
