package get_availability

import (
	"sort"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

// generateSlotTimes генерирует времена слотов для одного правила расписания.
// Сетка фиксированная: шаг 30 минут от начала правила, кандидат - любое
// время начала в [start, end). Правило 09:00-12:00 дает слоты
// 09:00, 09:30, ..., 11:30; при невыровненном конце 09:00-12:15 слот 12:00
// тоже предлагается.
func generateSlotTimes(rule *domain.SlotRule) []types.TimeString {
	startMin := rule.StartTime.Minutes()
	endMin := rule.EndTime.Minutes()

	slots := make([]types.TimeString, 0)
	for m := startMin; m < endMin; m += domain.SlotIntervalMinutes {
		slots = append(slots, types.FromMinutes(m))
	}

	return slots
}

// collectSlotTimes собирает времена по всем правилам дня, убирает дубликаты
// (перекрывающиеся правила) и возвращает отсортированный список
func collectSlotTimes(rules []*domain.SlotRule) []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	result := make([]types.TimeString, 0)

	for _, rule := range rules {
		for _, slot := range generateSlotTimes(rule) {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			result = append(result, slot)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Minutes() < result[j].Minutes()
	})

	return result
}

// subtractBookedTimes убирает из списка времена, занятые активными
// бронированиями. Без паузы слот выпадает только при точном совпадении
// времени; при bufferMinutes > 0 также убираются слоты, чье 30-минутное
// окно подходит к окну бронирования ближе, чем на buffer минут:
// слот выпадает, когда |slot - booking| < 30 + buffer.
func subtractBookedTimes(slots []types.TimeString, bookings []*domain.Booking, bufferMinutes int) []types.TimeString {
	bookedMinutes := make([]int, 0, len(bookings))
	for _, bk := range bookings {
		if !bk.IsActive() {
			continue
		}
		bookedMinutes = append(bookedMinutes, bk.ScheduledTime.Minutes())
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		slotMin := slot.Minutes()
		taken := false
		for _, bookedMin := range bookedMinutes {
			diff := slotMin - bookedMin
			if diff < 0 {
				diff = -diff
			}
			if diff == 0 || (bufferMinutes > 0 && diff < domain.SlotIntervalMinutes+bufferMinutes) {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, slot)
		}
	}

	return available
}
