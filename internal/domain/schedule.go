package domain

import (
	"time"

	"github.com/inovalogics-art/booking-service/pkg/types"
)

// SlotRule represents one recurring weekly opening window.
// Несколько правил на один день недели допустимы (например, утренний и
// дневной блок); пересекающиеся правила дают дубликаты кандидатов,
// которые схлопываются при расчете доступности.
type SlotRule struct {
	ID        string
	DayOfWeek int // 0 = Sunday .. 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
}

// SlotRuleUpdate частичное обновление правила; nil-поля не трогаются
type SlotRuleUpdate struct {
	DayOfWeek *int
	StartTime *types.TimeString
	EndTime   *types.TimeString
	IsActive  *bool
}

// IsEmpty returns true if the update contains no fields
func (u *SlotRuleUpdate) IsEmpty() bool {
	return u.DayOfWeek == nil && u.StartTime == nil && u.EndTime == nil && u.IsActive == nil
}

// BlockedDate represents a calendar date fully excluded from booking,
// independent of weekday rules
type BlockedDate struct {
	ID        string
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}
