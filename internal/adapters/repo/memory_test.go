package repo

import "testing"

func TestKnownChatsAppendOnly(t *testing.T) {
	m := NewMemory()
	m.Touch(3)
	m.Touch(1)
	m.Touch(3)
	known := m.KnownChats()
	if len(known) != 2 || known[0] != 1 || known[1] != 3 {
		t.Fatalf("ожидали [1 3], получили %v", known)
	}
}

func TestGetUnknownChatReturnsEmptyPreferences(t *testing.T) {
	m := NewMemory()
	p := m.Get(77)
	if p.ChatID != 77 || p.DeliveryTime != "" || p.TimezoneOffset != "" {
		t.Fatalf("неожиданные настройки: %+v", p)
	}
}

func TestPreferencesAreIsolatedPerChat(t *testing.T) {
	m := NewMemory()
	m.SetDeliveryTime(1, "08:00")
	m.SetTimezone(1, "+01:00")
	m.SetDeliveryTime(2, "21:00")

	if p := m.Get(1); p.DeliveryTime != "08:00" || p.TimezoneOffset != "+01:00" {
		t.Fatalf("чат 1: %+v", p)
	}
	if p := m.Get(2); p.DeliveryTime != "21:00" || p.TimezoneOffset != "" {
		t.Fatalf("чат 2: %+v", p)
	}
}

func TestSetTimezoneKeepsDeliveryTime(t *testing.T) {
	m := NewMemory()
	m.SetDeliveryTime(1, "08:00")
	m.SetTimezone(1, "-05:00")
	if p := m.Get(1); p.DeliveryTime != "08:00" || p.TimezoneOffset != "-05:00" {
		t.Fatalf("настройки затёрли друг друга: %+v", p)
	}
}
