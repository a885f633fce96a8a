package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"dojo365-bot/internal/adapters/bot"
	"dojo365-bot/internal/adapters/repo"
	"dojo365-bot/internal/domain"
	"dojo365-bot/internal/infra/config"
	infrahttp "dojo365-bot/internal/infra/http"
	"dojo365-bot/internal/infra/log"
	"dojo365-bot/internal/infra/metrics"
	"dojo365-bot/internal/infra/queue"
	"dojo365-bot/internal/usecase/prefs"
	"dojo365-bot/internal/usecase/quotes"
	"dojo365-bot/internal/usecase/schedule"
)

func main() {
	cfg := config.Load()
	logger := log.NewLogger(cfg.AppEnv)
	metrics.MustRegister(prometheus.DefaultRegisterer)

	// Явный таймаут клиента: он должен быть заметно больше окна long-poll.
	httpClient := &http.Client{Timeout: time.Duration(cfg.Telegram.PollTimeout+30) * time.Second}
	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось создать бота")
	}
	logger.Info().Str("account", botAPI.Self.UserName).Msg("бот авторизован")

	api := bot.NewAPI(botAPI, logger)
	api.RegisterCommands()

	sessions := repo.NewMemory()
	quoteService := quotes.NewService()
	prefsService := prefs.NewService(sessions)
	handler := bot.NewHandler(api, quoteService, prefsService, logger)
	poller := bot.NewPoller(api, handler, sessions, logger, cfg.Telegram.PollTimeout)
	scheduler := schedule.NewService(sessions, sessions, cfg.Delivery.Time, cfg.Delivery.TZOffset)

	deliveries, closeQueue, err := buildQueue(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Queue.Driver).Msg("не удалось создать очередь доставки")
	}
	defer closeQueue()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runProducer(ctx, logger, scheduler, deliveries)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runConsumer(ctx, logger, deliveries, handler)
	}()

	var ops *infrahttp.Server
	if cfg.MetricsAddr != "" {
		ops = infrahttp.NewServer(logger)
		go func() {
			if err := ops.Start(cfg.MetricsAddr); err != nil {
				logger.Error().Err(err).Msg("служебный HTTP сервер остановлен")
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	logger.Info().Msg("остановка бота")
	cancel()
	wg.Wait()
	if ops != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = ops.Shutdown(shutdownCtx)
	}
}

func buildQueue(cfg config.AppConfig) (domain.DeliveryQueue, func(), error) {
	switch cfg.Queue.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		q := queue.NewRedisDeliveryQueue(client, cfg.Queue.Key)
		return q, func() { _ = client.Close() }, nil
	case "rabbit":
		q, err := queue.NewRabbitDeliveryQueue(cfg.Queue.AMQPURL, cfg.Queue.Key)
		if err != nil {
			return nil, nil, err
		}
		return q, func() { _ = q.Close() }, nil
	default:
		return queue.NewMemoryDeliveryQueue(0), func() {}, nil
	}
}

// runProducer раз в минуту проверяет, кому пора отправить ежедневную цитату,
// и ставит задания в очередь. Рассылка отделена от цикла диспетчеризации.
func runProducer(ctx context.Context, logger zerolog.Logger, scheduler *schedule.Service, deliveries domain.DeliveryQueue) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			for _, chatID := range scheduler.DueChats(now) {
				job := domain.DeliveryJob{
					ID:          uuid.NewString(),
					ChatID:      chatID,
					RequestedAt: now.UTC(),
					Cause:       domain.DeliveryCauseScheduled,
				}
				if err := deliveries.Enqueue(ctx, job); err != nil {
					logger.Error().Err(err).Int64("chat", chatID).Msg("не удалось поставить задание рассылки")
					continue
				}
				metrics.DeliveriesEnqueued.Inc()
			}
		}
	}
}

// runConsumer забирает задания из очереди и отправляет цитаты.
func runConsumer(ctx context.Context, logger zerolog.Logger, deliveries domain.DeliveryQueue, handler *bot.Handler) {
	for {
		job, err := deliveries.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error().Err(err).Msg("не удалось прочитать задание рассылки")
			continue
		}
		logger.Info().Str("job", job.ID).Int64("chat", job.ChatID).Str("cause", job.Cause).Msg("отправляем ежедневную цитату")
		handler.DeliverQuote(job.ChatID)
	}
}
