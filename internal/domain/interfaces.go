package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender отправляет сообщения в Telegram.
type Sender interface {
	SendPlain(chatID int64, text string) error
	SendHTML(chatID int64, text string) error
	SendMenu(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(callbackID, text string) error
}

// UpdateFetcher выполняет long-poll чтение апдейтов.
type UpdateFetcher interface {
	Fetch(offset int, timeoutSec int) ([]tgbotapi.Update, error)
}

// QuoteSource возвращает случайную цитату из подборки.
type QuoteSource interface {
	Random() Quote
}

// PreferenceRepo управляет настройками чатов.
type PreferenceRepo interface {
	Get(chatID int64) Preferences
	SetDeliveryTime(chatID int64, hhmm string)
	SetTimezone(chatID int64, offset string)
}

// ChatRegistry запоминает все чаты, с которыми бот общался.
type ChatRegistry interface {
	Touch(chatID int64)
	KnownChats() []int64
}

// DeliveryQueue — очередь заданий на доставку цитат.
type DeliveryQueue interface {
	Enqueue(ctx context.Context, job DeliveryJob) error
	Pop(ctx context.Context) (DeliveryJob, error)
}
