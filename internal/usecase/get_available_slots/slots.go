package get_available_slots

import (
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

// buildSlots размечает слоты дня статусами и ценами.
// Порядок проверок совпадает с серверной валидацией выбора:
// слотовое бронирование -> запас времени -> гибкое бронирование.
func buildSlots(
	window domain.OperatingWindow,
	cfg domain.FieldConfiguration,
	bookings []*domain.Booking,
	date time.Time,
	now time.Time,
) []SlotInfo {
	slots := domain.GenerateSlots(window)
	result := make([]SlotInfo, len(slots))

	today := sameDay(date, now)

	for i, slot := range slots {
		info := SlotInfo{
			Hour:      slot.Hour,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Price:     domain.PriceForHour(slot.Hour, cfg),
			Status:    SlotStatusAvailable,
		}

		var coveredByFlexible bool
		for _, b := range bookings {
			if !b.OccupiesSlots() || !b.CoversHour(slot.Hour) {
				continue
			}
			if b.Type == domain.TypeSlots {
				info.Status = SlotStatusBooked
				break
			}
			coveredByFlexible = true
		}

		if info.Status == SlotStatusAvailable {
			switch {
			case today && isTooSoon(slot.Hour, now):
				info.Status = SlotStatusTooSoon
			case coveredByFlexible:
				info.Status = SlotStatusFlexible
			}
		}

		result[i] = info
	}

	return result
}

// isTooSoon применяет правило минимального запаса для сегодняшних слотов
func isTooSoon(hour int, now time.Time) bool {
	switch {
	case hour < now.Hour():
		return true
	case hour == now.Hour():
		return true
	case hour == now.Hour()+1 && now.Minute() > domain.MinLeadTimeMinutes:
		return true
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
