package get_available_slots

import "time"

// SlotStatus статус слота на экране бронирования
type SlotStatus string

const (
	// SlotStatusAvailable слот свободен и может быть выбран
	SlotStatusAvailable SlotStatus = "available"
	// SlotStatusBooked слот занят слотовым бронированием
	SlotStatusBooked SlotStatus = "booked"
	// SlotStatusFlexible слот перекрыт гибким бронированием
	SlotStatusFlexible SlotStatus = "flexible"
	// SlotStatusTooSoon слот в прошлом или начинается без минимального запаса
	SlotStatusTooSoon SlotStatus = "too_soon"
)

// Request запрос доступных слотов площадки на дату
type Request struct {
	TurfID        int64     `json:"turfId"`
	FieldConfigID *int64    `json:"fieldConfigId,omitempty"` // По умолчанию первая конфигурация площадки
	Date          time.Time `json:"date"`
}

// SlotInfo слот с ценой и статусом занятости
type SlotInfo struct {
	Hour      int        `json:"hour"`
	StartTime string     `json:"startTime"` // "18:00"
	EndTime   string     `json:"endTime"`   // "19:00"
	Price     float64    `json:"price"`
	Status    SlotStatus `json:"status"`
}

// FieldConfigInfo краткая информация о конфигурации поля для переключателя
type FieldConfigInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Response доступные слоты площадки на дату
type Response struct {
	TurfID          int64             `json:"turfId"`
	TurfName        string            `json:"turfName"`
	FieldConfigID   int64             `json:"fieldConfigId"`
	FieldConfigName string            `json:"fieldConfigName"`
	FieldConfigs    []FieldConfigInfo `json:"fieldConfigs"`
	Date            string            `json:"date"` // "2025-06-15"
	MinPrice        float64           `json:"minPrice"`
	MaxPrice        float64           `json:"maxPrice"`
	Slots           []SlotInfo        `json:"slots"`
}
