package bot

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"dojo365-bot/internal/infra/metrics"
)

// API оборачивает tgbotapi.BotAPI и реализует domain.Sender и
// domain.UpdateFetcher.
type API struct {
	bot *tgbotapi.BotAPI
	log zerolog.Logger
}

// NewAPI создаёт адаптер Telegram.
func NewAPI(bot *tgbotapi.BotAPI, log zerolog.Logger) *API {
	return &API{bot: bot, log: log}
}

// Fetch выполняет long-poll запрос getUpdates начиная с указанного offset.
func (a *API) Fetch(offset int, timeoutSec int) ([]tgbotapi.Update, error) {
	cfg := tgbotapi.NewUpdate(offset)
	cfg.Timeout = timeoutSec
	start := time.Now()
	updates, err := a.bot.GetUpdates(cfg)
	metrics.ObserveNetworkRequest("telegram_bot", "get_updates", start, err)
	return updates, err
}

// SendPlain отправляет сообщение без разметки.
func (a *API) SendPlain(chatID int64, text string) error {
	return a.send(tgbotapi.NewMessage(chatID, text))
}

// SendHTML отправляет сообщение с HTML-разметкой.
func (a *API) SendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return a.send(msg)
}

// SendMenu отправляет HTML-сообщение с inline-клавиатурой.
func (a *API) SendMenu(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	return a.send(msg)
}

func (a *API) send(msg tgbotapi.MessageConfig) error {
	start := time.Now()
	_, err := a.bot.Send(msg)
	metrics.ObserveNetworkRequest("telegram_bot", "send_message", start, err)
	if err != nil {
		metrics.SendErrors.Inc()
	}
	return err
}

// AnswerCallback снимает «часики» с нажатой кнопки.
func (a *API) AnswerCallback(callbackID, text string) error {
	start := time.Now()
	_, err := a.bot.Request(tgbotapi.NewCallback(callbackID, text))
	metrics.ObserveNetworkRequest("telegram_bot", "answer_callback", start, err)
	return err
}

// RegisterCommands публикует список команд, чтобы клиенты показывали меню.
func (a *API) RegisterCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "quote", Description: "Get wisdom now"},
		{Command: "time", Description: "Set daily delivery time"},
		{Command: "timezone", Description: "Set timezone"},
		{Command: "help", Description: "Show help"},
	}
	if _, err := a.bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		a.log.Error().Err(err).Msg("не удалось зарегистрировать команды бота")
	}
}
