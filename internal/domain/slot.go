package domain

import "fmt"

// Slot один бронируемый часовой слот, выводится из окна работы площадки
// Слоты не хранятся - это чистая функция от OperatingWindow
type Slot struct {
	Hour      int
	StartTime string // "HH:00"
	EndTime   string // "HH:00", для часа 23 заворачивается в "00:00"
}

// NewSlot создает слот для указанного часа
func NewSlot(hour int) Slot {
	return Slot{
		Hour:      hour,
		StartTime: fmt.Sprintf("%02d:00", hour),
		EndTime:   fmt.Sprintf("%02d:00", (hour+1)%24),
	}
}

// Display возвращает строку вида "18:00 - 19:00" для отображения
func (s Slot) Display() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// GenerateSlots выводит упорядоченный набор слотов из окна работы
// Для круглосуточной площадки - все 24 часа, иначе StartHour..EndHour включительно
// Детерминированная функция без побочных эффектов, StartHour == EndHour даёт один слот
func GenerateSlots(w OperatingWindow) []Slot {
	if w.IsContinuous24h {
		slots := make([]Slot, 0, 24)
		for hour := 0; hour <= 23; hour++ {
			slots = append(slots, NewSlot(hour))
		}
		return slots
	}

	slots := make([]Slot, 0, w.EndHour-w.StartHour+1)
	for hour := w.StartHour; hour <= w.EndHour; hour++ {
		slots = append(slots, NewSlot(hour))
	}
	return slots
}
