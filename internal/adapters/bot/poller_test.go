package bot

import (
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"dojo365-bot/internal/adapters/repo"
	"dojo365-bot/internal/usecase/prefs"
	"dojo365-bot/internal/usecase/quotes"
)

type fetchResult struct {
	updates []tgbotapi.Update
	err     error
}

type fakeFetcher struct {
	results []fetchResult
	offsets []int
}

func (f *fakeFetcher) Fetch(offset int, timeoutSec int) ([]tgbotapi.Update, error) {
	f.offsets = append(f.offsets, offset)
	if len(f.results) == 0 {
		return nil, nil
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res.updates, res.err
}

type dispatched struct {
	kind   string
	chatID int64
	data   string
}

type recordingHandler struct {
	calls []dispatched
	panic bool
}

func (r *recordingHandler) HandleCommand(chatID int64, text string) {
	if r.panic {
		panic("handler boom")
	}
	r.calls = append(r.calls, dispatched{"command", chatID, text})
}

func (r *recordingHandler) HandleCallback(chatID int64, callbackID, data string) {
	r.calls = append(r.calls, dispatched{"callback", chatID, data})
}

func messageUpdate(id int, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	}
}

func callbackUpdate(id int, chatID int64, callbackID, data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      callbackID,
			Data:    data,
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		},
	}
}

func TestPollerAdvancesWatermarkAndRegistersChat(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{messageUpdate(5, 1, "/quote")}},
	}}
	handler := &recordingHandler{}
	sessions := repo.NewMemory()
	p := NewPoller(fetcher, handler, sessions, zerolog.Nop(), 5)

	p.runIteration()

	if p.Watermark() != 5 {
		t.Fatalf("ожидали watermark 5, получили %d", p.Watermark())
	}
	known := sessions.KnownChats()
	if len(known) != 1 || known[0] != 1 {
		t.Fatalf("ожидали известный чат 1, получили %v", known)
	}
	if len(handler.calls) != 1 || handler.calls[0].kind != "command" || handler.calls[0].data != "/quote" {
		t.Fatalf("неожиданные вызовы: %+v", handler.calls)
	}
	if fetcher.offsets[0] != 1 {
		t.Fatalf("первый запрос должен идти с offset 1, получили %d", fetcher.offsets[0])
	}
}

func TestPollerNeverRedispatchesStaleUpdates(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{messageUpdate(3, 1, "/quote"), messageUpdate(4, 1, "/help")}},
		{updates: []tgbotapi.Update{messageUpdate(4, 1, "/help"), messageUpdate(2, 1, "/quote"), messageUpdate(6, 1, "/start")}},
	}}
	handler := &recordingHandler{}
	p := NewPoller(fetcher, handler, repo.NewMemory(), zerolog.Nop(), 5)

	p.runIteration()
	p.runIteration()

	if p.Watermark() != 6 {
		t.Fatalf("ожидали watermark 6, получили %d", p.Watermark())
	}
	if len(handler.calls) != 3 {
		t.Fatalf("апдейты 2 и 4 не должны диспетчеризоваться повторно: %+v", handler.calls)
	}
	if handler.calls[2].data != "/start" {
		t.Fatalf("последним должен обработаться id 6: %+v", handler.calls)
	}
}

func TestPollerSortsUpdatesAscending(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{
			messageUpdate(9, 1, "/help"),
			messageUpdate(7, 1, "/quote"),
			messageUpdate(8, 1, "/start"),
		}},
	}}
	handler := &recordingHandler{}
	p := NewPoller(fetcher, handler, repo.NewMemory(), zerolog.Nop(), 5)

	p.runIteration()

	var texts []string
	for _, c := range handler.calls {
		texts = append(texts, c.data)
	}
	if strings.Join(texts, ",") != "/quote,/start,/help" {
		t.Fatalf("порядок диспетчеризации должен быть по возрастанию id: %v", texts)
	}
	if p.Watermark() != 9 {
		t.Fatalf("ожидали watermark 9, получили %d", p.Watermark())
	}
}

func TestPollerSurvivesFetchErrors(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{err: errors.New("network down")},
		{updates: []tgbotapi.Update{messageUpdate(1, 1, "/quote")}},
	}}
	handler := &recordingHandler{}
	p := NewPoller(fetcher, handler, repo.NewMemory(), zerolog.Nop(), 5)

	p.runIteration()
	if p.Watermark() != 0 {
		t.Fatalf("ошибка транспорта не должна двигать watermark")
	}
	p.runIteration()
	if len(handler.calls) != 1 {
		t.Fatalf("после ошибки цикл должен продолжать работу: %+v", handler.calls)
	}
}

func TestPollerSkipsNonCommandText(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{messageUpdate(1, 42, "hello there")}},
	}}
	handler := &recordingHandler{}
	sessions := repo.NewMemory()
	p := NewPoller(fetcher, handler, sessions, zerolog.Nop(), 5)

	p.runIteration()

	if len(handler.calls) != 0 {
		t.Fatalf("обычный текст не должен диспетчеризоваться: %+v", handler.calls)
	}
	if p.Watermark() != 1 {
		t.Fatalf("watermark двигается и для пропущенных апдейтов")
	}
	if known := sessions.KnownChats(); len(known) != 1 || known[0] != 42 {
		t.Fatalf("чат должен попадать в KnownChats даже без команды: %v", known)
	}
}

func TestPollerDispatchesCallbacks(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{callbackUpdate(6, 1, "cb1", "tz_+01:00")}},
	}}
	handler := &recordingHandler{}
	p := NewPoller(fetcher, handler, repo.NewMemory(), zerolog.Nop(), 5)

	p.runIteration()

	if len(handler.calls) != 1 || handler.calls[0].kind != "callback" || handler.calls[0].data != "tz_+01:00" {
		t.Fatalf("неожиданные вызовы: %+v", handler.calls)
	}
	if p.Watermark() != 6 {
		t.Fatalf("ожидали watermark 6, получили %d", p.Watermark())
	}
}

func TestPollerRecoversFromHandlerPanic(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{messageUpdate(1, 1, "/quote"), messageUpdate(2, 1, "/help")}},
	}}
	handler := &recordingHandler{panic: true}
	p := NewPoller(fetcher, handler, repo.NewMemory(), zerolog.Nop(), 5)

	p.runIteration()

	if p.Watermark() != 2 {
		t.Fatalf("паника обработчика не должна останавливать итерацию, watermark %d", p.Watermark())
	}
}

// Сценарий из продуктовых требований: поток апдейтов с tz-callback'ом через
// настоящий Handler поверх фейкового транспорта.
func TestPollerEndToEndTimezoneCallback(t *testing.T) {
	sender := &fakeSender{}
	sessions := repo.NewMemory()
	h := NewHandler(sender, quotes.NewServiceWithSeed(1), prefs.NewService(sessions), zerolog.Nop())
	fetcher := &fakeFetcher{results: []fetchResult{
		{updates: []tgbotapi.Update{
			messageUpdate(5, 1, "/quote"),
			callbackUpdate(6, 1, "cb1", "tz_+01:00"),
		}},
	}}
	p := NewPoller(fetcher, h, sessions, zerolog.Nop(), 5)

	p.runIteration()

	if p.Watermark() != 6 {
		t.Fatalf("ожидали watermark 6, получили %d", p.Watermark())
	}
	if len(sender.plain) != 1 {
		t.Fatalf("ожидали ровно одну цитату, получили %d", len(sender.plain))
	}
	if got := sessions.Get(1).TimezoneOffset; got != "+01:00" {
		t.Fatalf("ожидали +01:00, получили %q", got)
	}
	if len(sender.acks) != 1 || sender.acks[0].callbackID != "cb1" || sender.acks[0].text == "" {
		t.Fatalf("ожидали один ack по cb1 с непустым текстом: %+v", sender.acks)
	}
}
