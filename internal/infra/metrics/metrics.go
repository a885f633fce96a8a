package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_updates_total",
		Help: "Количество обработанных апдейтов по типам",
	}, []string{"kind"})

	UpdatesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_updates_skipped_total",
		Help: "Апдейты, отброшенные по watermark",
	})

	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_fetch_errors_total",
		Help: "Ошибки long-poll чтения апдейтов",
	})

	SendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_send_errors_total",
		Help: "Ошибки отправки сообщений ботом",
	})

	QuotesServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_quotes_served_total",
		Help: "Количество отправленных цитат",
	})

	DeliveriesEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_deliveries_enqueued_total",
		Help: "Задания ежедневной рассылки, поставленные в очередь",
	})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Длительность сетевых запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"component", "operation", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Количество сетевых запросов",
	}, []string{"component", "operation", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		UpdatesTotal,
		UpdatesSkipped,
		FetchErrors,
		SendErrors,
		QuotesServed,
		DeliveriesEnqueued,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// ObserveNetworkRequest записывает длительность и статус сетевого запроса.
func ObserveNetworkRequest(component, operation string, start time.Time, err error) {
	if component == "" {
		component = "unknown"
	}
	if operation == "" {
		operation = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, status).Inc()
}
