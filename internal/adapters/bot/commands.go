package bot

import "strings"

// command — закрытый словарь команд бота. Всё, что не входит в словарь,
// попадает в cmdUnknown и намеренно остаётся без ответа.
type command int

const (
	cmdUnknown command = iota
	cmdStart
	cmdQuote
	cmdHelp
	cmdTime
	cmdTimezone
)

// parseCommand выделяет первый токен текста и возвращает команду вместе с
// остатком строки. Сравнение регистрозависимое.
func parseCommand(text string) (command, string) {
	text = strings.TrimSpace(text)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return cmdUnknown, ""
	}
	args := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
	switch fields[0] {
	case "/start":
		return cmdStart, args
	case "/quote":
		return cmdQuote, args
	case "/help":
		return cmdHelp, args
	case "/time":
		return cmdTime, args
	case "/timezone":
		return cmdTimezone, args
	default:
		return cmdUnknown, args
	}
}
