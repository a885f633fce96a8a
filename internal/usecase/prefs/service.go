package prefs

import (
	"errors"
	"strings"
	"time"

	"dojo365-bot/internal/domain"
)

var (
	// ErrInvalidTime возвращается при времени вне формата HH:MM.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidTimezone возвращается при смещении вне допустимого списка.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// allowedOffsets — закрытый список смещений, которые можно выбрать в меню.
var allowedOffsets = map[string]struct{}{
	"+00:00": {},
	"+01:00": {}, "+02:00": {}, "+03:00": {},
	"-08:00": {}, "-07:00": {}, "-06:00": {}, "-05:00": {}, "-04:00": {}, "-03:00": {},
	"+05:00": {}, "+06:00": {}, "+07:00": {}, "+08:00": {}, "+09:00": {}, "+10:00": {}, "+11:00": {}, "+12:00": {},
}

// Service отвечает за настройки доставки чатов.
type Service struct {
	repo domain.PreferenceRepo
}

// NewService создаёт сервис.
func NewService(repo domain.PreferenceRepo) *Service {
	return &Service{repo: repo}
}

// ParseLocalTime проверяет время формата HH:MM.
func ParseLocalTime(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	tm, err := time.Parse("15:04", trimmed)
	if err != nil {
		return "", ErrInvalidTime
	}
	return tm.Format("15:04"), nil
}

// SetDeliveryTime сохраняет время ежедневной доставки для чата.
func (s *Service) SetDeliveryTime(chatID int64, input string) (string, error) {
	normalized, err := ParseLocalTime(input)
	if err != nil {
		return "", err
	}
	s.repo.SetDeliveryTime(chatID, normalized)
	return normalized, nil
}

// SetTimezone сохраняет смещение часового пояса, если оно допустимо.
func (s *Service) SetTimezone(chatID int64, offset string) error {
	if !OffsetAllowed(offset) {
		return ErrInvalidTimezone
	}
	s.repo.SetTimezone(chatID, offset)
	return nil
}

// OffsetAllowed сообщает, входит ли смещение в допустимый список.
func OffsetAllowed(offset string) bool {
	_, ok := allowedOffsets[offset]
	return ok
}
