package quotes

import "dojo365-bot/internal/domain"

// Catalog возвращает встроенную подборку цитат.
func Catalog() []domain.Quote {
	return []domain.Quote{
		{
			Text:   "The happiness of your life depends upon the quality of your thoughts.",
			Author: "Marcus Aurelius",
			Source: "Meditations",
		},
		{
			Text:   "It is not what happens to you, but how you react to it that matters.",
			Author: "Epictetus",
			Source: "Enchiridion",
		},
		{
			Text:   "Life is very short and anxious for those who forget the past, neglect the present, and fear the future.",
			Author: "Seneca",
			Source: "Letters from a Stoic",
		},
		{
			Text:   "The unexamined life is not worth living.",
			Author: "Socrates",
			Source: "Plato's Apology",
		},
		{
			Text:   "The way to get started is to quit talking and begin doing.",
			Author: "Walt Disney",
			Source: "Motivational Quote",
		},
	}
}

// defaultSymbol используется для авторов без собственного значка.
const defaultSymbol = "💭"

var authorSymbols = map[string]string{
	"Marcus Aurelius":     "🏛️",
	"Epictetus":           "⚡",
	"Seneca":              "📜",
	"Plato":               "🔮",
	"Aristotle":           "🎯",
	"Socrates":            "💭",
	"Buddha":              "🧘",
	"Lao Tzu":             "☯️",
	"Confucius":           "📚",
	"Friedrich Nietzsche": "🔥",
	"Carl Jung":           "🌙",
	"Viktor Frankl":       "💪",
	"Sun Tzu":             "⚔️",
	"Rumi":                "💫",
	"Albert Camus":        "☀️",
	"Henry David Thoreau": "🌲",
	"Ralph Waldo Emerson": "🌅",
}

// SymbolFor возвращает значок автора или значок по умолчанию.
func SymbolFor(author string) string {
	if symbol, ok := authorSymbols[author]; ok {
		return symbol
	}
	return defaultSymbol
}
