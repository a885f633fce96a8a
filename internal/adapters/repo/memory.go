package repo

import (
	"sort"
	"sync"

	"dojo365-bot/internal/domain"
)

// Memory хранит настройки чатов и список известных чатов в памяти процесса.
// Пишет в него цикл диспетчеризации, читает ещё и планировщик, поэтому
// доступ под мьютексом.
type Memory struct {
	mu    sync.Mutex
	prefs map[int64]domain.Preferences
	known map[int64]struct{}
}

// NewMemory создаёт пустое хранилище.
func NewMemory() *Memory {
	return &Memory{
		prefs: make(map[int64]domain.Preferences),
		known: make(map[int64]struct{}),
	}
}

// Touch отмечает чат как известный.
func (m *Memory) Touch(chatID int64) {
	m.mu.Lock()
	m.known[chatID] = struct{}{}
	m.mu.Unlock()
}

// KnownChats возвращает все чаты, с которыми бот общался.
func (m *Memory) KnownChats() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	chats := make([]int64, 0, len(m.known))
	for chatID := range m.known {
		chats = append(chats, chatID)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats
}

// Get возвращает настройки чата. Для незнакомого чата — пустые настройки.
func (m *Memory) Get(chatID int64) domain.Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prefs[chatID]
	if !ok {
		return domain.Preferences{ChatID: chatID}
	}
	return p
}

// SetDeliveryTime сохраняет время доставки для чата.
func (m *Memory) SetDeliveryTime(chatID int64, hhmm string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[chatID]
	p.ChatID = chatID
	p.DeliveryTime = hhmm
	m.prefs[chatID] = p
}

// SetTimezone сохраняет смещение часового пояса для чата.
func (m *Memory) SetTimezone(chatID int64, offset string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[chatID]
	p.ChatID = chatID
	p.TimezoneOffset = offset
	m.prefs[chatID] = p
}
