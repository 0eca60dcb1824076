package models

import (
	"errors"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

var (
	// ErrInvalidDay возвращается при некорректном дне недели
	ErrInvalidDay = errors.New("day_of_week must be between 0 and 6")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")
)

// Request модели

// AddSlotRuleRequest запрос на добавление правила расписания
type AddSlotRuleRequest struct {
	DayOfWeek int    `json:"day_of_week"`         // 0 = воскресенье .. 6 = суббота
	StartTime string `json:"start_time"`          // "09:00"
	EndTime   string `json:"end_time"`            // "17:00"
	IsActive  *bool  `json:"is_active,omitempty"` // nil = активно
}

// ToDomain конвертирует request в domain правило
func (r *AddSlotRuleRequest) ToDomain() (*domain.SlotRule, error) {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}

	start, err := parseSlotTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseSlotTime(r.EndTime)
	if err != nil {
		return nil, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &domain.SlotRule{
		DayOfWeek: r.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  active,
	}, nil
}

// UpdateSlotRuleRequest запрос на частичное обновление правила
type UpdateSlotRuleRequest struct {
	DayOfWeek *int    `json:"day_of_week,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ToDomainUpdate конвертирует request в domain обновление
func (r *UpdateSlotRuleRequest) ToDomainUpdate() (domain.SlotRuleUpdate, error) {
	var upd domain.SlotRuleUpdate

	if r.DayOfWeek != nil {
		if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
			return upd, ErrInvalidDay
		}
		upd.DayOfWeek = r.DayOfWeek
	}

	if r.StartTime != nil {
		start, err := parseSlotTime(*r.StartTime)
		if err != nil {
			return upd, err
		}
		upd.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := parseSlotTime(*r.EndTime)
		if err != nil {
			return upd, err
		}
		upd.EndTime = &end
	}

	upd.IsActive = r.IsActive

	return upd, nil
}

// BlockDateRequest запрос на блокировку даты
type BlockDateRequest struct {
	Date   string  `json:"date"` // "2026-01-15"
	Reason *string `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain блокировку
func (r *BlockDateRequest) ToDomain() (*domain.BlockedDate, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &domain.BlockedDate{
		Date:   date,
		Reason: r.Reason,
	}, nil
}

// Response модели

// SlotRuleResponse ответ с правилом расписания
type SlotRuleResponse struct {
	ID        string    `json:"id"`
	DayOfWeek int       `json:"day_of_week"`
	DayName   string    `json:"day_name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// BlockedDateResponse ответ с блокировкой даты
type BlockedDateResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleResponse полный срез расписания для админки.
// Ключ blockedDates исторический: его уже читает фронтенд календаря.
type ScheduleResponse struct {
	Slots        []SlotRuleResponse    `json:"slots"`
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainSlotRule конвертирует domain правило в response
func FromDomainSlotRule(rule *domain.SlotRule) *SlotRuleResponse {
	return &SlotRuleResponse{
		ID:        rule.ID,
		DayOfWeek: rule.DayOfWeek,
		DayName:   domain.DayNames[rule.DayOfWeek],
		StartTime: string(rule.StartTime),
		EndTime:   string(rule.EndTime),
		IsActive:  rule.IsActive,
		CreatedAt: rule.CreatedAt,
	}
}

// FromDomainBlockedDate конвертирует domain блокировку в response
func FromDomainBlockedDate(bd *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        bd.ID,
		Date:      bd.Date.Format(domain.DateFormat),
		Reason:    bd.Reason,
		CreatedAt: bd.CreatedAt,
	}
}

// FromDomainSchedule собирает полный срез расписания
func FromDomainSchedule(rules []*domain.SlotRule, blocked []*domain.BlockedDate) *ScheduleResponse {
	resp := &ScheduleResponse{
		Slots:        make([]SlotRuleResponse, len(rules)),
		BlockedDates: make([]BlockedDateResponse, len(blocked)),
	}
	for i, rule := range rules {
		resp.Slots[i] = *FromDomainSlotRule(rule)
	}
	for i, bd := range blocked {
		resp.BlockedDates[i] = *FromDomainBlockedDate(bd)
	}
	return resp
}

func parseSlotTime(s string) (types.TimeString, error) {
	slot, err := types.ParseTimeString(s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return slot.Normalize()
}
