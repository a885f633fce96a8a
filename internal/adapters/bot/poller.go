package bot

import (
	"context"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"dojo365-bot/internal/domain"
	"dojo365-bot/internal/infra/metrics"
)

// updateHandler — то, что поллер вызывает для каждого классифицированного
// апдейта.
type updateHandler interface {
	HandleCommand(chatID int64, text string)
	HandleCallback(chatID int64, callbackID, data string)
}

// Poller — цикл диспетчеризации. Читает апдейты long-poll'ом, ведёт
// watermark и раскладывает апдейты по обработчикам. Единственный владелец
// watermark; падение обработчика не роняет цикл.
type Poller struct {
	fetcher   domain.UpdateFetcher
	handler   updateHandler
	registry  domain.ChatRegistry
	log       zerolog.Logger
	waitSec   int
	interval  time.Duration
	watermark int
}

// NewPoller создаёт цикл диспетчеризации.
func NewPoller(fetcher domain.UpdateFetcher, handler updateHandler, registry domain.ChatRegistry, log zerolog.Logger, waitSec int) *Poller {
	if waitSec <= 0 {
		waitSec = 5
	}
	return &Poller{
		fetcher:  fetcher,
		handler:  handler,
		registry: registry,
		log:      log,
		waitSec:  waitSec,
		interval: time.Second,
	}
}

// Watermark возвращает идентификатор последнего обработанного апдейта.
func (p *Poller) Watermark() int {
	return p.watermark
}

// Run крутит цикл до отмены контекста. Любая ошибка одной итерации
// логируется и не останавливает цикл.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info().Msg("цикл диспетчеризации запущен")
	for {
		if ctx.Err() != nil {
			p.log.Info().Msg("цикл диспетчеризации остановлен")
			return
		}
		p.runIteration()
		select {
		case <-ctx.Done():
			p.log.Info().Msg("цикл диспетчеризации остановлен")
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) runIteration() {
	updates, err := p.fetcher.Fetch(p.watermark+1, p.waitSec)
	if err != nil {
		metrics.FetchErrors.Inc()
		p.log.Error().Err(err).Msg("не удалось получить апдейты")
		return
	}
	if len(updates) == 0 {
		return
	}
	// Транспорт обычно отдаёт апдейты по возрастанию, но цикл на это
	// не полагается.
	sort.Slice(updates, func(i, j int) bool { return updates[i].UpdateID < updates[j].UpdateID })
	for _, upd := range updates {
		if upd.UpdateID <= p.watermark {
			metrics.UpdatesSkipped.Inc()
			continue
		}
		// Watermark двигается до диспетчеризации: доставка at-most-once.
		p.watermark = upd.UpdateID
		p.dispatch(upd)
	}
}

func (p *Poller) dispatch(upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Int("update", upd.UpdateID).Msg("обработчик упал, апдейт пропущен")
		}
	}()
	switch {
	case upd.Message != nil:
		chatID := upd.Message.Chat.ID
		p.registry.Touch(chatID)
		text := upd.Message.Text
		if !strings.HasPrefix(strings.TrimSpace(text), "/") {
			metrics.UpdatesTotal.WithLabelValues("text").Inc()
			p.log.Debug().Int64("chat", chatID).Msg("не команда, пропускаем")
			return
		}
		metrics.UpdatesTotal.WithLabelValues("command").Inc()
		p.handler.HandleCommand(chatID, text)
	case upd.CallbackQuery != nil:
		cb := upd.CallbackQuery
		if cb.Message == nil {
			metrics.UpdatesTotal.WithLabelValues("other").Inc()
			p.log.Debug().Str("callback", cb.ID).Msg("callback без сообщения, пропускаем")
			return
		}
		chatID := cb.Message.Chat.ID
		p.registry.Touch(chatID)
		metrics.UpdatesTotal.WithLabelValues("callback").Inc()
		p.handler.HandleCallback(chatID, cb.ID, cb.Data)
	default:
		metrics.UpdatesTotal.WithLabelValues("other").Inc()
	}
}
