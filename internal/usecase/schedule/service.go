package schedule

import (
	"fmt"
	"strconv"
	"time"

	"dojo365-bot/internal/domain"
)

// Service решает, каким чатам пора отправить ежедневную цитату.
// Отметки об уже отправленных днях живут в памяти процесса.
type Service struct {
	prefs       domain.PreferenceRepo
	registry    domain.ChatRegistry
	defaultTime string
	defaultTZ   string
	sent        map[int64]string // chatID -> локальная дата последней отправки
}

// NewService создаёт сервис с настройками по умолчанию из конфига.
func NewService(prefs domain.PreferenceRepo, registry domain.ChatRegistry, defaultTime, defaultTZ string) *Service {
	return &Service{
		prefs:       prefs,
		registry:    registry,
		defaultTime: defaultTime,
		defaultTZ:   defaultTZ,
		sent:        make(map[int64]string),
	}
}

// DueChats возвращает чаты, у которых локальное время совпало с временем
// доставки и которым сегодня ещё не отправляли. Возвращённые чаты сразу
// помечаются отправленными на эту дату.
func (s *Service) DueChats(now time.Time) []int64 {
	var due []int64
	for _, chatID := range s.registry.KnownChats() {
		p := s.prefs.Get(chatID)
		deliveryTime := p.DeliveryTime
		if deliveryTime == "" {
			deliveryTime = s.defaultTime
		}
		offset := p.TimezoneOffset
		if offset == "" {
			offset = s.defaultTZ
		}
		shift, err := ParseOffset(offset)
		if err != nil {
			continue
		}
		local := now.UTC().Add(shift)
		if local.Format("15:04") != deliveryTime {
			continue
		}
		day := local.Format("2006-01-02")
		if s.sent[chatID] == day {
			continue
		}
		s.sent[chatID] = day
		due = append(due, chatID)
	}
	return due
}

// ParseOffset разбирает смещение формата ±HH:MM.
func ParseOffset(offset string) (time.Duration, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return 0, fmt.Errorf("bad offset %q", offset)
	}
	hours, err := strconv.Atoi(offset[1:3])
	if err != nil || hours > 14 {
		return 0, fmt.Errorf("bad offset %q", offset)
	}
	minutes, err := strconv.Atoi(offset[4:])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("bad offset %q", offset)
	}
	shift := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if offset[0] == '-' {
		shift = -shift
	}
	return shift, nil
}
