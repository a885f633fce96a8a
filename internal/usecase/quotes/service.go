package quotes

import (
	"fmt"
	"math/rand"
	"time"

	"dojo365-bot/internal/domain"
)

// Service выдаёт случайные цитаты и форматирует их для отправки.
type Service struct {
	catalog []domain.Quote
	rng     *rand.Rand
}

// NewService создаёт сервис поверх встроенной подборки.
func NewService() *Service {
	return &Service{
		catalog: Catalog(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithSeed создаёт сервис с детерминированным генератором.
func NewServiceWithSeed(seed int64) *Service {
	return &Service{
		catalog: Catalog(),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Random возвращает равновероятно выбранную цитату. Повторы допустимы.
func (s *Service) Random() domain.Quote {
	return s.catalog[s.rng.Intn(len(s.catalog))]
}

// Format собирает текст сообщения с цитатой. Разметка не используется,
// сообщение отправляется как plain text.
func Format(q domain.Quote) string {
	return fmt.Sprintf("%s \"%s\"\n\n— %s\n%s\n\n@dojo365_bot", SymbolFor(q.Author), q.Text, q.Author, q.Source)
}
