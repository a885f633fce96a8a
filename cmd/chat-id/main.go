// Одноразовая утилита: печатает идентификаторы чатов, от которых у бота
// есть непрочитанные апдейты. Запускается после того, как боту написали
// хотя бы одно сообщение.
package main

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dojo365-bot/internal/infra/config"
	"dojo365-bot/internal/infra/log"
)

func main() {
	cfg := config.Load()
	logger := log.NewLogger(cfg.AppEnv)

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось создать бота")
	}

	updates, err := botAPI.GetUpdates(tgbotapi.NewUpdate(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось получить апдейты")
	}

	if len(updates) == 0 {
		fmt.Println("No messages found. Send your bot any message (like /start) and run again.")
		return
	}

	type chatInfo struct {
		chatType string
		userName string
	}
	seen := make(map[int64]chatInfo)
	order := make([]int64, 0)
	for _, upd := range updates {
		if upd.Message == nil {
			continue
		}
		chat := upd.Message.Chat
		if _, ok := seen[chat.ID]; ok {
			continue
		}
		info := chatInfo{chatType: chat.Type}
		if upd.Message.From != nil {
			info.userName = upd.Message.From.FirstName
		}
		seen[chat.ID] = info
		order = append(order, chat.ID)
	}

	if len(order) == 0 {
		fmt.Println("No messages found. Send your bot any message (like /start) and run again.")
		return
	}

	fmt.Println("Found messages! Your chat IDs:")
	for _, chatID := range order {
		info := seen[chatID]
		fmt.Printf("  chat_id=%d type=%s user=%s\n", chatID, info.chatType, info.userName)
	}
	fmt.Printf("\nAdd this to your environment:\nTG_CHAT_ID=%d\n", order[0])
}
