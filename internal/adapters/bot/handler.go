package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"dojo365-bot/internal/domain"
	"dojo365-bot/internal/infra/metrics"
	"dojo365-bot/internal/usecase/prefs"
	"dojo365-bot/internal/usecase/quotes"
)

// Handler обрабатывает команды и нажатия кнопок.
type Handler struct {
	sender domain.Sender
	quotes domain.QuoteSource
	prefs  *prefs.Service
	log    zerolog.Logger
}

// NewHandler создаёт обработчик.
func NewHandler(sender domain.Sender, source domain.QuoteSource, prefsService *prefs.Service, log zerolog.Logger) *Handler {
	return &Handler{sender: sender, quotes: source, prefs: prefsService, log: log}
}

// HandleCommand выполняет команду из текстового сообщения. Неизвестные
// команды намеренно остаются без ответа.
func (h *Handler) HandleCommand(chatID int64, text string) {
	cmd, args := parseCommand(text)
	switch cmd {
	case cmdStart:
		h.sendMenu(chatID, welcomeText(), mainKeyboard())
	case cmdQuote:
		h.sendQuote(chatID)
	case cmdHelp:
		h.sendPlain(chatID, helpText())
	case cmdTimezone:
		h.sendMenu(chatID, timezoneMenuText("Timezone Settings"), timezoneKeyboard())
	case cmdTime:
		if args != "" {
			h.setDeliveryTime(chatID, args)
			return
		}
		h.sendMenu(chatID, timeMenuText("Set Daily Time"), timeKeyboard())
	case cmdUnknown:
		h.log.Debug().Int64("chat", chatID).Str("text", text).Msg("неизвестная команда, пропускаем")
	}
}

// HandleCallback обрабатывает нажатие кнопки. Каждый callback подтверждается
// ровно один раз, независимо от того, распознан токен или нет.
func (h *Handler) HandleCallback(chatID int64, callbackID, data string) {
	toast := ""
	token := parseCallback(data)
	switch token.kind {
	case cbGetQuote:
		h.sendQuote(chatID)
	case cbChangeTimezone:
		h.sendMenu(chatID, timezoneMenuText("Change Timezone"), timezoneKeyboard())
	case cbChangeTime:
		h.sendMenu(chatID, timeMenuText("Change Daily Time"), timeKeyboard())
	case cbTimeCustom:
		h.sendHTML(chatID, customTimeText())
	case cbTimeValue:
		normalized, err := h.prefs.SetDeliveryTime(chatID, token.value)
		if err != nil {
			h.log.Warn().Int64("chat", chatID).Str("value", token.value).Msg("некорректный токен времени с кнопки")
			break
		}
		h.sendHTML(chatID, fmt.Sprintf("✅ <b>Time set to %s</b>\n\nDaily quotes will arrive at this time.", normalized))
		toast = fmt.Sprintf("Time set to %s", normalized)
	case cbTimezoneRegion:
		markup, ok := regionKeyboard(token.value)
		if !ok {
			h.log.Warn().Int64("chat", chatID).Str("region", token.value).Msg("неизвестный регион")
			break
		}
		h.sendMenu(chatID, timezoneMenuText("Change Timezone"), markup)
	case cbTimezoneValue:
		if err := h.prefs.SetTimezone(chatID, token.value); err != nil {
			// Недопустимое смещение: без исходящего сообщения, только ack.
			h.log.Warn().Int64("chat", chatID).Str("offset", token.value).Msg("смещение вне допустимого списка")
			break
		}
		h.sendHTML(chatID, fmt.Sprintf("✅ <b>Timezone set to %s</b>\n\nYour quotes will be delivered at the correct local time.", token.value))
		toast = fmt.Sprintf("Timezone set to %s", token.value)
	case cbUnknown:
		h.log.Debug().Int64("chat", chatID).Str("data", data).Msg("неизвестный callback-токен")
	}
	if err := h.sender.AnswerCallback(callbackID, toast); err != nil {
		h.log.Error().Err(err).Str("callback", callbackID).Msg("не удалось ответить на callback")
	}
}

// DeliverQuote отправляет случайную цитату в чат. Используется и командами,
// и консьюмером очереди ежедневной рассылки.
func (h *Handler) DeliverQuote(chatID int64) {
	h.sendQuote(chatID)
}

func (h *Handler) sendQuote(chatID int64) {
	q := h.quotes.Random()
	h.sendPlain(chatID, quotes.Format(q))
	metrics.QuotesServed.Inc()
}

func (h *Handler) setDeliveryTime(chatID int64, value string) {
	normalized, err := h.prefs.SetDeliveryTime(chatID, value)
	if err != nil {
		h.sendPlain(chatID, "Invalid time format. Use /time HH:MM, for example /time 08:30")
		return
	}
	h.sendHTML(chatID, fmt.Sprintf("✅ <b>Time set to %s</b>\n\nDaily quotes will arrive at this time.", normalized))
}

func (h *Handler) sendPlain(chatID int64, text string) {
	if err := h.sender.SendPlain(chatID, text); err != nil {
		h.log.Error().Err(err).Int64("chat", chatID).Msg("не удалось отправить сообщение")
	}
}

func (h *Handler) sendHTML(chatID int64, text string) {
	if err := h.sender.SendHTML(chatID, text); err != nil {
		h.log.Error().Err(err).Int64("chat", chatID).Msg("не удалось отправить сообщение")
	}
}

func (h *Handler) sendMenu(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if err := h.sender.SendMenu(chatID, text, markup); err != nil {
		h.log.Error().Err(err).Int64("chat", chatID).Msg("не удалось отправить меню")
	}
}

func welcomeText() string {
	lines := []string{
		"🥋 <b>Welcome to DOJO365</b>",
		"",
		"<i>Your daily dose of timeless wisdom.</i>",
		"",
		"💡 <b>Features:</b>",
		"• Daily philosophy quotes",
		"• Timezone support",
		"• Interactive setup",
		"• Manual quote requests",
		"",
		"🔧 <b>Commands:</b>",
		"/quote - Get wisdom now",
		"/time - Set daily time",
		"/timezone - Set timezone",
		"/help - More info",
		"",
		"@dojo365_bot",
	}
	return strings.Join(lines, "\n")
}

func helpText() string {
	lines := []string{
		"🥋 DOJO365 Commands",
		"",
		"📋 Available Commands:",
		"/quote - Get wisdom now",
		"/time - Set daily time",
		"/timezone - Set timezone",
		"/help - Show this menu",
		"",
		"💡 Features:",
		"• Daily automated quotes",
		"• Timezone support",
		"• Interactive buttons",
		"• Manual quote requests",
		"",
		"@dojo365_bot",
	}
	return strings.Join(lines, "\n")
}

func timezoneMenuText(title string) string {
	return fmt.Sprintf("🌍 <b>%s</b>\n\nChoose your timezone for accurate delivery:", title)
}

func timeMenuText(title string) string {
	return fmt.Sprintf("🕕 <b>%s</b>\n\nChoose when you want to receive daily quotes:", title)
}

func customTimeText() string {
	return "📝 <b>Custom Time</b>\n\nUse: /time HH:MM\nExample: /time 08:30"
}
