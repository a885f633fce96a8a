package queue

import (
	"context"

	"dojo365-bot/internal/domain"
)

// MemoryDeliveryQueue — процессная очередь на канале. Используется по
// умолчанию, когда бот работает одним процессом без внешнего брокера.
type MemoryDeliveryQueue struct {
	jobs chan domain.DeliveryJob
}

// NewMemoryDeliveryQueue создаёт очередь с указанной ёмкостью буфера.
func NewMemoryDeliveryQueue(capacity int) *MemoryDeliveryQueue {
	if capacity <= 0 {
		capacity = 64
	}
	return &MemoryDeliveryQueue{jobs: make(chan domain.DeliveryJob, capacity)}
}

// Enqueue публикует задание в очередь.
func (q *MemoryDeliveryQueue) Enqueue(ctx context.Context, job domain.DeliveryJob) error {
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop блокирующе читает задание из очереди.
func (q *MemoryDeliveryQueue) Pop(ctx context.Context) (domain.DeliveryJob, error) {
	select {
	case job := <-q.jobs:
		return job, nil
	case <-ctx.Done():
		return domain.DeliveryJob{}, ctx.Err()
	}
}
