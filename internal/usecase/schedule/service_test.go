package schedule

import (
	"testing"
	"time"

	"dojo365-bot/internal/adapters/repo"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time %q: %v", value, err)
	}
	return ts
}

func TestParseOffset(t *testing.T) {
	cases := map[string]time.Duration{
		"+00:00": 0,
		"+01:00": time.Hour,
		"-05:00": -5 * time.Hour,
		"-05:30": -5*time.Hour - 30*time.Minute,
		"+12:00": 12 * time.Hour,
	}
	for offset, expected := range cases {
		got, err := ParseOffset(offset)
		if err != nil {
			t.Fatalf("не ожидали ошибку для %q: %v", offset, err)
		}
		if got != expected {
			t.Fatalf("ParseOffset(%q) = %v, ожидали %v", offset, got, expected)
		}
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, offset := range []string{"", "UTC", "05:00", "+5:00", "+05-00", "+15:00", "+05:99"} {
		if _, err := ParseOffset(offset); err == nil {
			t.Fatalf("ожидали ошибку для %q", offset)
		}
	}
}

func TestDueChatsUsesChatPreferences(t *testing.T) {
	store := repo.NewMemory()
	store.Touch(1)
	store.SetDeliveryTime(1, "09:00")
	store.SetTimezone(1, "+02:00")
	s := NewService(store, store, "06:00", "+00:00")

	// 07:00 UTC = 09:00 в поясе +02:00.
	due := s.DueChats(at(t, "2025-06-01T07:00:00Z"))
	if len(due) != 1 || due[0] != 1 {
		t.Fatalf("ожидали чат 1, получили %v", due)
	}
}

func TestDueChatsFallsBackToDefaults(t *testing.T) {
	store := repo.NewMemory()
	store.Touch(5)
	s := NewService(store, store, "06:00", "+00:00")

	if due := s.DueChats(at(t, "2025-06-01T05:59:00Z")); len(due) != 0 {
		t.Fatalf("рано: %v", due)
	}
	if due := s.DueChats(at(t, "2025-06-01T06:00:00Z")); len(due) != 1 || due[0] != 5 {
		t.Fatalf("ожидали чат 5, получили %v", due)
	}
}

func TestDueChatsDeliversOncePerDay(t *testing.T) {
	store := repo.NewMemory()
	store.Touch(9)
	s := NewService(store, store, "06:00", "+00:00")

	if due := s.DueChats(at(t, "2025-06-01T06:00:00Z")); len(due) != 1 {
		t.Fatalf("первая проверка должна сработать: %v", due)
	}
	if due := s.DueChats(at(t, "2025-06-01T06:00:30Z")); len(due) != 0 {
		t.Fatalf("повтор в ту же минуту: %v", due)
	}
	if due := s.DueChats(at(t, "2025-06-02T06:00:00Z")); len(due) != 1 {
		t.Fatalf("на следующий день рассылка должна повториться: %v", due)
	}
}

func TestDueChatsIsolatesChats(t *testing.T) {
	store := repo.NewMemory()
	store.Touch(1)
	store.Touch(2)
	store.SetDeliveryTime(2, "21:00")
	s := NewService(store, store, "06:00", "+00:00")

	due := s.DueChats(at(t, "2025-06-01T06:00:00Z"))
	if len(due) != 1 || due[0] != 1 {
		t.Fatalf("только чат 1 должен быть due: %v", due)
	}
}
