package bot

import "strings"

// callbackKind — закрытый словарь токенов, приходящих с кнопок.
type callbackKind int

const (
	cbUnknown callbackKind = iota
	cbGetQuote
	cbChangeTimezone
	cbChangeTime
	cbTimeCustom
	cbTimeValue
	cbTimezoneRegion
	cbTimezoneValue
)

// callbackToken хранит разобранный токен кнопки. Для cbTimeValue value —
// время HH:MM, для cbTimezoneValue — смещение ±HH:MM, для cbTimezoneRegion —
// имя региона.
type callbackToken struct {
	kind  callbackKind
	value string
}

// parseCallback разбирает строку токена по префиксу.
func parseCallback(data string) callbackToken {
	switch {
	case data == "get_quote":
		return callbackToken{kind: cbGetQuote}
	case data == "change_timezone":
		return callbackToken{kind: cbChangeTimezone}
	case data == "change_time":
		return callbackToken{kind: cbChangeTime}
	case data == "time_custom":
		return callbackToken{kind: cbTimeCustom}
	case strings.HasPrefix(data, "time_"):
		return callbackToken{kind: cbTimeValue, value: strings.TrimPrefix(data, "time_")}
	case strings.HasPrefix(data, "tz_region_"):
		return callbackToken{kind: cbTimezoneRegion, value: strings.TrimPrefix(data, "tz_region_")}
	case strings.HasPrefix(data, "tz_"):
		return callbackToken{kind: cbTimezoneValue, value: strings.TrimPrefix(data, "tz_")}
	default:
		return callbackToken{kind: cbUnknown, value: data}
	}
}
