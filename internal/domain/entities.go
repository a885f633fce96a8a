package domain

import "time"

// Quote описывает одну цитату из встроенной подборки.
type Quote struct {
	Text   string
	Author string
	Source string
}

// Preferences хранит настройки доставки для одного чата.
// Пустые поля означают «не задано» — тогда действуют значения из конфига.
type Preferences struct {
	ChatID         int64
	DeliveryTime   string // формат HH:MM
	TimezoneOffset string // формат ±HH:MM
}

// DeliveryJob — задание на отправку цитаты в конкретный чат.
type DeliveryJob struct {
	ID          string    `json:"id"`
	ChatID      int64     `json:"chat_id"`
	RequestedAt time.Time `json:"requested_at"`
	Cause       string    `json:"cause"`
}

// Причины постановки задания в очередь.
const (
	DeliveryCauseScheduled = "scheduled"
	DeliveryCauseManual    = "manual"
)
