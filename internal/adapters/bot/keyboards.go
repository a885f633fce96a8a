package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// mainKeyboard — меню под приветственным сообщением.
func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💭 Get Quote Now", "get_quote"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌍 Set Timezone", "change_timezone"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🕕 Set Time", "change_time"),
		),
	)
}

// timezoneKeyboard — выбор региона. UTC выбирается сразу, регионы открывают
// второе меню с конкретными смещениями.
func timezoneKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 UTC (GMT+0)", "tz_+00:00"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇪🇺 Europe (+1 to +3)", "tz_region_europe"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇺🇸 America (-8 to -3)", "tz_region_america"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇦🇺 Asia Pacific (+5 to +12)", "tz_region_asia"),
		),
	)
}

// regionOffsets перечисляет смещения, доступные внутри каждого региона.
var regionOffsets = map[string][]string{
	"europe":  {"+01:00", "+02:00", "+03:00"},
	"america": {"-08:00", "-07:00", "-06:00", "-05:00", "-04:00", "-03:00"},
	"asia":    {"+05:00", "+06:00", "+07:00", "+08:00", "+09:00", "+10:00", "+11:00", "+12:00"},
}

// regionKeyboard строит меню смещений для региона, по три кнопки в ряд.
// Для неизвестного региона возвращает ok=false.
func regionKeyboard(region string) (tgbotapi.InlineKeyboardMarkup, bool) {
	offsets, ok := regionOffsets[region]
	if !ok {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, offset := range offsets {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("UTC"+offset, "tz_"+offset))
		if (i+1)%3 == 0 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

// timeKeyboard — выбор времени доставки: 06:00..12:00 по четыре в ряд
// плюс кнопка ручного ввода.
func timeKeyboard() tgbotapi.InlineKeyboardMarkup {
	times := []string{"06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00"}
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, t := range times {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(t, fmt.Sprintf("time_%s", t)))
		if (i+1)%4 == 0 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⚙️ Custom time", "time_custom"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
