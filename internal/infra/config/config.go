package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию бота.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`

	Telegram struct {
		Token         string `envconfig:"TG_BOT_TOKEN"`
		DefaultChatID int64  `envconfig:"TG_CHAT_ID"`
		PollTimeout   int    `envconfig:"POLL_TIMEOUT_SEC" default:"5"`
	} `envconfig:""`

	Delivery struct {
		Time     string `envconfig:"QUOTE_TIME" default:"06:00"`
		TZOffset string `envconfig:"TZ_OFFSET" default:"+00:00"`
	} `envconfig:""`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	Queue struct {
		Driver  string `envconfig:"QUEUE_DRIVER" default:"memory"`
		Key     string `envconfig:"DELIVERY_QUEUE" default:"quote_deliveries"`
		AMQPURL string `envconfig:"AMQP_URL"`
	} `envconfig:""`

	RedisAddr string `envconfig:"REDIS_ADDR"`
}

// Load загружает конфиг из окружения. Отсутствие токена — фатальная ошибка.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	if cfg.Telegram.Token == "" {
		log.Fatal("TG_BOT_TOKEN обязателен")
	}
	return cfg
}
